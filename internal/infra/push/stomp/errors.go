package stomp

import "errors"

var (
	// ErrDial возвращается, когда не удалось открыть websocket-соединение
	ErrDial = errors.New("push.stomp: dial websocket")

	// ErrHandshake возвращается, когда брокер отклонил STOMP CONNECT
	ErrHandshake = errors.New("push.stomp: stomp handshake")

	// ErrSubscribe возвращается, когда не удалось подписаться на топик
	ErrSubscribe = errors.New("push.stomp: subscribe")
)
