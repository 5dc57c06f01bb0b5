package config

type WorkerKeyStruct struct {
	PersistAnswersQueue string
	SendResultsQueue    string
}

var WorkerKey = &WorkerKeyStruct{
	PersistAnswersQueue: "quiz:persist_answers",
	SendResultsQueue:    "quiz:send_results",
}
