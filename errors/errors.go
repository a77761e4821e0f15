package errors

import "fmt"

var (
	ErrWorkerPanic      = fmt.Errorf("worker panic")
	ErrRoomFull         = fmt.Errorf("room is full")
	ErrConnectionClosed = fmt.Errorf("connection closed")
	ErrSendTimeout      = fmt.Errorf("send timed out")
)
