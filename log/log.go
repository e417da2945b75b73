// Package log installs the global zap logger as an import side effect:
//
//	import _ "session-service/log"
package log

import "go.uber.org/zap"

func init() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	zap.ReplaceGlobals(logger)
}
