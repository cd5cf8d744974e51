package mystore

import (
	"context"
	"fmt"
	"os"
	"strings"
)

const (
	BackendInMemory  = "inmem"
	BackendDatastore = "datastore"
	BackendRedis     = "redis"
)

type Options struct {
	Backend   string
	ProjectID string
	RedisURL  string
}

//go:generate mockgen -source=api.go -package mystore -destination store_mock.go Store
type Store[T any] interface {
	Put(c context.Context, uid string, value T) error
	Get(c context.Context, uid string) (T, bool, error)
	List(c context.Context) ([]T, error)
}

func New[T any](c context.Context, opts Options) (Store[T], func(), error) {
	backend := opts.Backend
	if backend == "" && os.Getenv("GOOGLE_CLOUD_PROJECT") != "" {
		backend = BackendDatastore
	}

	switch backend {
	case "", BackendInMemory:
		return NewInMemoryStore[T](c)
	case BackendDatastore:
		projectID := opts.ProjectID
		if projectID == "" {
			projectID = os.Getenv("GOOGLE_CLOUD_PROJECT")
		}
		return newGcloudStore[T](c, projectID)
	case BackendRedis:
		return newRedisStore[T](c, opts.RedisURL)
	default:
		return nil, nil, fmt.Errorf("unknown store backend '%s'", backend)
	}
}

// kindOf derives the entity kind from the type name, without package prefix.
func kindOf[T any]() string {
	val := new(T)
	kind := fmt.Sprintf("%T", *val)
	if idx := strings.LastIndex(kind, "."); idx >= 0 {
		kind = kind[idx+1:]
	}
	return kind
}
