package ecs

import (
	"context"
	"math"
	"reflect"
	"strings"
	"time"
)

// refresher is implemented by *Query[T]; the scheduler refreshes every
// registered query once per tick before systems run.
type refresher interface {
	Refresh()
}

// Scheduler runs systems in registration order against one world and
// records per-system timing.
type Scheduler struct {
	world      *World
	systems    []System
	refreshers []refresher
	timings    []*systemTiming
}

type systemTiming struct {
	name  string
	runs  int64
	min   time.Duration
	max   time.Duration
	total time.Duration
	last  time.Duration
}

// NewScheduler creates a scheduler for the given world.
func NewScheduler(world *World) *Scheduler {
	return &Scheduler{world: world}
}

// Register adds a system, wiring up its Query and Singleton fields.
func (s *Scheduler) Register(system System) {
	s.wireFields(system)
	s.systems = append(s.systems, system)

	t := reflect.TypeOf(system)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	s.timings = append(s.timings, &systemTiming{
		name: t.Name(),
		min:  time.Duration(math.MaxInt64),
	})
}

// wireFields initializes Query and Singleton fields on the system struct
// and remembers the queries for per-tick refresh.
func (s *Scheduler) wireFields(system System) {
	v := reflect.ValueOf(system)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return
	}

	for i := 0; i < v.NumField(); i++ {
		field := v.Field(i)
		if !field.CanSet() || field.Kind() != reflect.Struct {
			continue
		}

		name := field.Type().Name()
		isQuery := strings.HasPrefix(name, "Query[")
		isSingleton := strings.HasPrefix(name, "Singleton[")
		if !isQuery && !isSingleton {
			continue
		}

		init := field.Addr().MethodByName("Init")
		if !init.IsValid() {
			panic("ecs: no Init method on field " + v.Type().Field(i).Name)
		}
		init.Call([]reflect.Value{reflect.ValueOf(s.world)})

		if isQuery {
			s.refreshers = append(s.refreshers, field.Addr().Interface().(refresher))
		}
	}
}

// Once refreshes all queries, executes every system with the given delta
// time, and flushes the frame's command buffer.
func (s *Scheduler) Once(dt float64) {
	for _, r := range s.refreshers {
		r.Refresh()
	}

	frame := newUpdateFrame(dt, s.world)

	for i, system := range s.systems {
		start := time.Now()
		system.Execute(frame)
		elapsed := time.Since(start)

		timing := s.timings[i]
		timing.runs++
		timing.last = elapsed
		timing.total += elapsed
		timing.min = min(timing.min, elapsed)
		timing.max = max(timing.max, elapsed)
	}

	frame.Commands.Flush(s.world)
}

// Run ticks the scheduler at the given interval until the context is
// cancelled. Delta time is measured between ticks, not assumed from the
// interval.
func (s *Scheduler) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now
			s.Once(dt)
		}
	}
}

// SchedulerStats summarizes system execution since the scheduler was
// created.
type SchedulerStats struct {
	SystemCount     int
	TotalExecutions int64
	Systems         []SystemStats
}

// SystemStats holds timing for a single registered system.
type SystemStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

// Stats returns a snapshot of per-system timing.
func (s *Scheduler) Stats() *SchedulerStats {
	stats := &SchedulerStats{
		SystemCount: len(s.systems),
		Systems:     make([]SystemStats, len(s.timings)),
	}

	for i, timing := range s.timings {
		var avg time.Duration
		if timing.runs > 0 {
			avg = timing.total / time.Duration(timing.runs)
		}
		stats.Systems[i] = SystemStats{
			Name:           timing.name,
			ExecutionCount: timing.runs,
			MinDuration:    timing.min,
			MaxDuration:    timing.max,
			AvgDuration:    avg,
			LastDuration:   timing.last,
			TotalDuration:  timing.total,
		}
		stats.TotalExecutions += timing.runs
	}
	return stats
}
