package log_test

import (
	"testing"

	"github.com/couchbase/tools-sum/log"
	"github.com/couchbase/tools-sum/testutil"
)

func TestPackageFunctionsUseLevels(t *testing.T) {
	logger := &testutil.MockLogger{}
	defer logger.Install()()

	logger.On("Log", log.LevelTrace, "t 1").Once()
	logger.On("Log", log.LevelDebug, "d 2").Once()
	logger.On("Log", log.LevelInfo, "i 3").Once()
	logger.On("Log", log.LevelWarning, "w 4").Once()
	logger.On("Log", log.LevelError, "e 5").Once()

	log.Tracef("t %d", 1)
	log.Debugf("d %d", 2)
	log.Infof("i %d", 3)
	log.Warnf("w %d", 4)
	log.Errorf("e %d", 5)

	logger.AssertExpectations(t)
}
