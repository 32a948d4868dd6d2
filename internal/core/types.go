package core

// Command описывает отложенное действие, которое вызывает Invoker.
// Ошибка возвращается вызывающему без изменений.
type Command interface {
	Execute() error
}
