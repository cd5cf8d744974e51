package mytoast

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MarcGrol/shopcart/lib/mylog"
	"github.com/MarcGrol/shopcart/lib/mytime"
	"github.com/MarcGrol/shopcart/lib/myuuid"
)

func TestQueue(t *testing.T) {
	c := context.TODO()

	t.Run("Drain in order and forget", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		nower, uuider, sut := setup(ctrl)

		nower.EXPECT().Now().Return(mytime.ExampleTime).Times(2)
		uuider.EXPECT().Create().Return("t1")
		uuider.EXPECT().Create().Return("t2")

		sut.Error(c, "Error adding product")
		sut.Error(c, "Requested quantity is out of stock")

		assert.Equal(t, []Toast{
			{UID: "t1", CreatedAt: mytime.ExampleTime, Severity: SeverityError, Message: "Error adding product"},
			{UID: "t2", CreatedAt: mytime.ExampleTime, Severity: SeverityError, Message: "Requested quantity is out of stock"},
		}, sut.Drain())
		assert.Empty(t, sut.Drain())
	})

	t.Run("Oldest dropped beyond limit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		nower, uuider, sut := setup(ctrl)

		nower.EXPECT().Now().Return(mytime.ExampleTime).AnyTimes()
		for i := 0; i < maxPending+5; i++ {
			uuider.EXPECT().Create().Return(fmt.Sprintf("t%d", i))
		}

		for i := 0; i < maxPending+5; i++ {
			sut.Error(c, "Error removing product")
		}

		drained := sut.Drain()
		assert.Len(t, drained, maxPending)
		assert.Equal(t, "t5", drained[0].UID)
		assert.Equal(t, fmt.Sprintf("t%d", maxPending+4), drained[maxPending-1].UID)
	})
}

func setup(ctrl *gomock.Controller) (*mytime.MockNower, *myuuid.MockUUIDer, *Queue) {
	nower := mytime.NewMockNower(ctrl)
	uuider := myuuid.NewMockUUIDer(ctrl)
	return nower, uuider, NewQueue(nower, uuider, mylog.New("toast"))
}
