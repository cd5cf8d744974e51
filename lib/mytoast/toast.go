package mytoast

import (
	"context"
	"sync"
	"time"

	"github.com/MarcGrol/shopcart/lib/mylog"
	"github.com/MarcGrol/shopcart/lib/mytime"
	"github.com/MarcGrol/shopcart/lib/myuuid"
)

// maxPending bounds the toasts kept for a UI that never drains them; the oldest go first.
const maxPending = 20

type Severity string

const (
	SeverityError Severity = "error"
)

type Toast struct {
	UID       string    `json:"uid"`
	CreatedAt time.Time `json:"createdAt"`
	Severity  Severity  `json:"severity"`
	Message   string    `json:"message"`
}

//go:generate mockgen -source=toast.go -package mytoast -destination toast_mock.go Toaster
type Toaster interface {
	Error(c context.Context, message string)
}

// Queue holds raised toasts until the UI drains them.
type Queue struct {
	sync.Mutex
	pending []Toast
	nower   mytime.Nower
	uuider  myuuid.UUIDer
	logger  mylog.Logger
}

func NewQueue(nower mytime.Nower, uuider myuuid.UUIDer, logger mylog.Logger) *Queue {
	return &Queue{
		pending: []Toast{},
		nower:   nower,
		uuider:  uuider,
		logger:  logger,
	}
}

func (q *Queue) Error(c context.Context, message string) {
	toast := Toast{
		UID:       q.uuider.Create(),
		CreatedAt: q.nower.Now(),
		Severity:  SeverityError,
		Message:   message,
	}

	q.logger.Log(c, toast.UID, mylog.SeverityInfo, "Toast %s: %s", toast.Severity, toast.Message)

	q.Lock()
	defer q.Unlock()

	q.pending = append(q.pending, toast)
	if len(q.pending) > maxPending {
		q.pending = q.pending[len(q.pending)-maxPending:]
	}
}

// Drain returns the pending toasts in the order they were raised and forgets them.
func (q *Queue) Drain() []Toast {
	q.Lock()
	defer q.Unlock()

	drained := q.pending
	q.pending = []Toast{}

	return drained
}

type Drainer interface {
	Drain() []Toast
}
