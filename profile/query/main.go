// Profiling:
// go build ./profile/query
// go tool pprof -http=":8000" -nodefraction=0.001 ./query mem.pprof

package main

import (
	entitysystem "github.com/lholden/entitysystem"
	"github.com/pkg/profile"
)

type comp1 struct {
	entitysystem.Meta
	V int64
	W int64
}

type comp2 struct {
	entitysystem.Meta
	V int64
	W int64
}

func main() {
	iters := 10000
	entities := 1000
	p := profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook)
	run(iters, entities)
	p.Stop()
}

func run(iters, numEntities int) {
	em := entitysystem.NewEntityManager()
	cm := entitysystem.NewComponentManager()
	builder := entitysystem.NewBuilder2[comp1, comp2](em, cm)
	for i := 0; i < numEntities; i++ {
		builder.Spawn(
			comp1{Meta: entitysystem.NewMeta(), V: 1, W: 2},
			comp2{Meta: entitysystem.NewMeta(), V: 3, W: 4},
		)
	}
	query := entitysystem.NewFilter2[comp1, comp2](cm)
	for j := 0; j < iters; j++ {
		query.Reset()
		for query.Next() {
			views, err := entitysystem.FindForMut[comp1](cm, query.Entity())
			if err != nil {
				panic(err)
			}
			other, err := entitysystem.Get[comp2](cm, query.Entity())
			if err != nil {
				panic(err)
			}
			c2 := other.Component()
			other.Release()
			for _, v := range views {
				c1 := v.Component()
				c1.V += c2.V
				c1.W += c2.W
			}
			entitysystem.ReleaseAllMut(views)
		}
	}
}
