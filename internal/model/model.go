// Package model contains data structures for run parameters and DTO of serve-mode
package model

// DefaultServerAddress is used by serve-mode when no address is configured
const DefaultServerAddress = ":8080"

// Config - параметры одного запуска поиска, не меняются после создания
type Config struct {
	Query         string // строка для поиска
	Target        string // имя файла, "-" для stdIn
	CaseSensitive bool
}

// ServerParam - параметры запуска в режиме сервера
type ServerParam struct {
	Address string
	Verbose bool
}

// SearchTask - задание на поиск, приходит в теле POST /search
type SearchTask struct {
	TaskID     string `json:"tid"`
	Query      string `json:"query"`       // пустая строка допустима - совпадает с каждой строкой
	Content    string `json:"content"`     // весь текст целиком
	IgnoreCase bool   `json:"ignore_case"` // false - поиск с учетом регистра
}

type SearchResult struct {
	TaskID   string   `json:"tid"`
	HashSumm uint64   `json:"hash"`
	Count    int      `json:"count"`
	Output   []string `json:"output"`
}
