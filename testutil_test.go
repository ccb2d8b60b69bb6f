package cradle_test

import (
	"errors"
	"fmt"
	"sync/atomic"
)

// Shared fixture services for container and resolver tests.

type testLogger interface {
	Log(msg string)
}

type consoleLogger struct {
	lines []string
}

func newConsoleLogger() *consoleLogger {
	return &consoleLogger{}
}

func (l *consoleLogger) Log(msg string) {
	l.lines = append(l.lines, msg)
}

type userService interface {
	Greet(name string) string
}

type userServiceImpl struct {
	logger testLogger
}

func newUserService(logger testLogger) *userServiceImpl {
	return &userServiceImpl{logger: logger}
}

func (s *userServiceImpl) Greet(name string) string {
	greeting := "hello, " + name
	s.logger.Log(greeting)
	return greeting
}

// reportService depends on both userService and testLogger, for tests that
// check sibling services share a singleton dependency.
type reportService struct {
	users  userService
	logger testLogger
}

func newReportService(users userService, logger testLogger) *reportService {
	return &reportService{users: users, logger: logger}
}

// countingService tracks construction counts across resolutions.
type countingService struct {
	n uint64
}

var constructionCount atomic.Uint64

func newCountingService() *countingService {
	return &countingService{n: constructionCount.Add(1)}
}

// failingService has a constructor that reports failure via its error
// return.
type failingService struct{}

var errBoom = errors.New("boom")

func newFailingService() (*failingService, error) {
	return nil, fmt.Errorf("constructing failingService: %w", errBoom)
}

// selfDependent loops back to its own contract; used only where the test
// deliberately avoids resolving it.
type selfDependent struct {
	inner *selfDependent
}

func newSelfDependent(inner *selfDependent) *selfDependent {
	return &selfDependent{inner: inner}
}
