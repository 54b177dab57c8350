package badger

import (
	"fmt"
	"strings"

	badgerdb "github.com/dgraph-io/badger/v3"
	"go.uber.org/zap"
)

// journalLogger routes badger's own log lines into the relayer's zap logger. Badger's info
// output (compactions, value log GC) is demoted to debug so CLI runs stay quiet.
type journalLogger struct {
	sugar *zap.SugaredLogger
}

var _ badgerdb.Logger = (*journalLogger)(nil)

func newJournalLogger(logger *zap.Logger) *journalLogger {
	return &journalLogger{sugar: logger.Named("badger").Sugar()}
}

// badger terminates most messages with a newline
func trimMessage(format string, args ...interface{}) string {
	return strings.TrimRight(fmt.Sprintf(format, args...), "\n")
}

func (j *journalLogger) Errorf(format string, args ...interface{}) {
	j.sugar.Error(trimMessage(format, args...))
}

func (j *journalLogger) Warningf(format string, args ...interface{}) {
	j.sugar.Warn(trimMessage(format, args...))
}

func (j *journalLogger) Infof(format string, args ...interface{}) {
	j.sugar.Debug(trimMessage(format, args...))
}

func (j *journalLogger) Debugf(format string, args ...interface{}) {
	j.sugar.Debug(trimMessage(format, args...))
}
