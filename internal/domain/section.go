package domain

type SectionStatus string

const (
	SectionOK      SectionStatus = "ok"
	SectionEmpty   SectionStatus = "empty"
	SectionError   SectionStatus = "error"
	SectionSkipped SectionStatus = "skipped"
)

// Section é o resultado de uma seção do painel. A camada de apresentação
// consome os quatro estados de forma uniforme.
type Section[T any] struct {
	Status  SectionStatus `json:"status"`
	Data    T             `json:"data,omitempty"`
	Message string        `json:"message,omitempty"`
}

func SectionWith[T any](data T) Section[T] {
	return Section[T]{Status: SectionOK, Data: data}
}

func EmptySection[T any](message string) Section[T] {
	return Section[T]{Status: SectionEmpty, Message: message}
}

func FailedSection[T any](err error) Section[T] {
	return Section[T]{Status: SectionError, Message: err.Error()}
}

func SkippedSection[T any]() Section[T] {
	return Section[T]{Status: SectionSkipped}
}

func (s Section[T]) OK() bool {
	return s.Status == SectionOK
}
