package servicemanager

import "context"

// Service is a long running component managed by the ServiceManager.
type Service interface {
	Init(ctx context.Context) error
	// Start blocks until ctx is done. readyCh is closed once the service accepts work.
	Start(ctx context.Context, readyCh chan<- struct{}) error
	Stop(ctx context.Context) error
	Health(ctx context.Context, checkLiveness bool) (int, string, error)
}
