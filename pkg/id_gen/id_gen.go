package id_gen

import (
	"context"
	"time"

	"github.com/sony/sonyflake/v2"

	"github.com/mbeoliero/iou/pkg/generic"
)

var DefaultStartTime = time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)

type IdGenerator interface {
	NextId(ctx context.Context) (int64, error)
}

var generator IdGenerator

func SetGenerator(g IdGenerator) {
	generator = g
}

type FlakeIdGenerator struct {
	SF *sonyflake.Sonyflake
}

func (f *FlakeIdGenerator) NextId(ctx context.Context) (int64, error) {
	return f.SF.NextID()
}

// defaultGenerator is built on first use so that importing this package
// never fails; a broken machine id surfaces from NextId instead.
var defaultGenerator = generic.OnceErr(func() (IdGenerator, error) {
	sf, err := sonyflake.New(sonyflake.Settings{
		StartTime: DefaultStartTime,
	})
	if err != nil {
		return nil, err
	}
	return &FlakeIdGenerator{SF: sf}, nil
})

func NextId(ctx context.Context) (int64, error) {
	if generator != nil {
		return generator.NextId(ctx)
	}
	g, err := defaultGenerator()
	if err != nil {
		return 0, err
	}
	return g.NextId(ctx)
}
