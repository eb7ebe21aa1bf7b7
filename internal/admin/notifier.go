package admin

import "go.uber.org/zap"

// Notifier surfaces the outcome of loads and mutations to the operator
type Notifier interface {
	Success(message string)
	Failure(message string, err error)
}

// LogNotifier writes notifications to the log
type LogNotifier struct {
	logger *zap.Logger
}

func NewLogNotifier(logger *zap.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Success(message string) {
	n.logger.Info(message)
}

func (n *LogNotifier) Failure(message string, err error) {
	n.logger.Error(message, zap.Error(err))
}
