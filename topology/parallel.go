package topology

import (
	"fmt"
	"sync"

	"github.com/notargets/gomesh/utils"
)

// BuildAllParallel runs the three passes with parallelDegree workers. Each
// pass partitions its target indices with a PartitionMap so every worker
// appends only to targets it owns, and per-target append order matches the
// serial passes: the result is identical to BuildAll.
func (tp *Topology) BuildAllParallel(parallelDegree int) *Topology {
	if parallelDegree < 1 {
		panic(fmt.Errorf("invalid parallel degree %d", parallelDegree))
	}
	var wg sync.WaitGroup

	tp.Vertices = make([]VertexTopology, tp.NumVertices)
	pm := utils.NewPartitionMap(parallelDegree, tp.NumVertices)
	for np := 0; np < parallelDegree; np++ {
		wg.Add(1)
		go func(np int) {
			vMin, vMax := pm.GetBucketRange(np)
			tp.buildVerticesRange(vMin, vMax)
			wg.Done()
		}(np)
	}
	wg.Wait()

	tp.Edges = make([]EdgeTopology, len(tp.edges))
	if len(tp.edges) != 0 {
		edgeCands, triCands := tp.edgeCandidates()
		pm = utils.NewPartitionMap(parallelDegree, len(tp.edges))
		for np := 0; np < parallelDegree; np++ {
			wg.Add(1)
			go func(np int) {
				kMin, kMax := pm.GetBucketRange(np)
				tp.buildEdgesRange(edgeCands, triCands, kMin, kMax)
				wg.Done()
			}(np)
		}
		wg.Wait()
	}

	tp.Tris = make([]TriTopology, len(tp.tris))
	if len(tp.tris) != 0 {
		RT := triVertexIncidence(tp.NumVertices, tp.tris)
		cands := sharedVertexCandidates(RT, RT)
		pm = utils.NewPartitionMap(parallelDegree, len(tp.tris))
		for np := 0; np < parallelDegree; np++ {
			wg.Add(1)
			go func(np int) {
				kMin, kMax := pm.GetBucketRange(np)
				tp.buildTrianglesRange(cands, kMin, kMax)
				wg.Done()
			}(np)
		}
		wg.Wait()
	}
	return tp
}
