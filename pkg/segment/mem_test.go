//go:build test

package segment

import (
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
	"sync"
	"testing"

	"github.com/bastiangx/wordseg/pkg/trie"
)

var memVocabulary = []string{
	"你好", "世界", "你们", "我们", "明天", "再见", "中国", "中国人", "学生", "学习",
	"老师", "朋友", "谢谢", "没有", "今天", "现在", "时候", "知道", "喜欢", "工作",
}

var memLines = []string{
	"你好，世界！",
	"我们明天再见",
	"中国人喜欢学习中文",
	"老师和学生都是朋友",
	"今天没有工作，谢谢",
	"现在是什么时候？我不知道",
	"🌍 hello 世界",
}

func heapAlloc() uint64 {
	var m runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&m)
	return m.Alloc
}

func TestSegmentMemoryConcurrent(t *testing.T) {
	configs := []struct {
		workers             int
		iterationsPerWorker int
	}{
		{workers: 1, iterationsPerWorker: 2000},
		{workers: 4, iterationsPerWorker: 500},
		{workers: 8, iterationsPerWorker: 250},
	}

	for _, config := range configs {
		t.Run(fmt.Sprintf("workers_%d_iter_%d", config.workers, config.iterationsPerWorker), func(t *testing.T) {
			runConcurrentSegmentTest(t, config.workers, config.iterationsPerWorker)
		})
	}
}

func runConcurrentSegmentTest(t *testing.T, workers, iterationsPerWorker int) {
	memFile, err := os.Create("segment_memory.prof")
	if err != nil {
		t.Fatalf("profile file creation failed: %v", err)
	}
	defer func() {
		memFile.Close()
		os.Remove("segment_memory.prof")
	}()

	// readers share one dictionary; it is not written while they run
	seg := New(trie.Build(memVocabulary))
	expected := make([]Set, len(memLines))
	for i, line := range memLines {
		expected[i] = seg.Segment(line)
	}

	baseline := heapAlloc()
	baselineGoroutines := runtime.NumGoroutine()

	var wg sync.WaitGroup
	var mismatches sync.Map
	for worker := 0; worker < workers; worker++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for iter := 0; iter < iterationsPerWorker; iter++ {
				for i, line := range memLines {
					if got := seg.Segment(line); got.Len() != expected[i].Len() {
						mismatches.Store(line, got.Len())
					}
				}
			}
		}()
	}
	wg.Wait()

	mismatches.Range(func(line, n any) bool {
		t.Errorf("concurrent segmentation of %q gave %d tokens", line, n)
		return true
	})

	totalOps := workers * iterationsPerWorker * len(memLines)
	memDelta := int64(heapAlloc()) - int64(baseline)
	goroutineDelta := runtime.NumGoroutine() - baselineGoroutines
	memPerOp := float64(memDelta) / float64(totalOps)

	t.Logf("workers=%d total_ops=%d mem_delta=%d bytes mem_per_op=%.2f goroutine_delta=%d",
		workers, totalOps, memDelta, memPerOp, goroutineDelta)

	if err := pprof.WriteHeapProfile(memFile); err != nil {
		t.Errorf("heap profile write failed: %v", err)
	}
	if memPerOp > 100 {
		t.Errorf("segmentation retains memory: %.2f bytes per op", memPerOp)
	}
	if goroutineDelta > 2 {
		t.Errorf("goroutine leak detected: %d goroutines leaked", goroutineDelta)
	}
}

func TestDictionaryChurnStability(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping dictionary churn test in short mode")
	}

	dict := trie.Build(memVocabulary)
	baseNodes := dict.NodeCount()
	churn := []string{"长城", "长江大桥", "北京欢迎你", "火车站", "飞机场"}

	baseline := heapAlloc()
	maxMemDelta := int64(0)
	for cycle := 0; cycle < 200; cycle++ {
		for _, w := range churn {
			dict.Insert(w)
		}
		for _, w := range churn {
			if !dict.Remove(w) {
				t.Fatalf("cycle %d: remove of %q failed", cycle, w)
			}
		}
		if n := dict.NodeCount(); n != baseNodes {
			t.Fatalf("cycle %d: %d live nodes, expected %d", cycle, n, baseNodes)
		}
		if cycle%50 == 0 {
			delta := int64(heapAlloc()) - int64(baseline)
			if delta > maxMemDelta {
				maxMemDelta = delta
			}
			t.Logf("cycle=%d size=%d nodes=%d mem_delta=%d bytes", cycle, dict.Size(), dict.NodeCount(), delta)
		}
	}

	if dict.Size() != len(memVocabulary) {
		t.Errorf("expected %d words after churn, got %d", len(memVocabulary), dict.Size())
	}
	// removed slots are reused, so churn does not grow the arena
	if maxMemDelta > 1<<20 {
		t.Errorf("excessive memory growth under churn: %d bytes", maxMemDelta)
	}
}
