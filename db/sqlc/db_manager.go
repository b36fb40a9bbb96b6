package sqlc

import "time"

const (
	QuerierCtxTimeout = time.Second * 10
)
