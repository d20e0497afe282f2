// Profiling:
// go build ./profile/insert
// go tool pprof -http=":8000" -nodefraction=0.001 ./insert mem.pprof

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

func main() {
	rounds := 50
	entities := 1000
	p := profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook)
	run(rounds, entities)
	p.Stop()
}

func run(rounds, numEntities int) {
	for i := 0; i < rounds; i++ {
		em := entitysystem.NewEntityManager()
		cm := entitysystem.NewComponentManager()
		handles := make([]entitysystem.Handle, 0, numEntities)
		for i := 0; i < numEntities; i++ {
			e := em.Create()
			handles = append(handles, entitysystem.Insert(cm, e, comp1{Meta: entitysystem.NewMeta(), V: 1, W: 2}))
		}
		for _, h := range handles {
			if _, err := entitysystem.Remove(cm, h); err != nil {
				panic(err)
			}
		}
	}
}
