package main

import (
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"runtime"
	"runtime/pprof"
	"time"

	compat "github.com/acceleration3/compat-go"
	"github.com/acceleration3/compat-go/pkg/strview"
)

func main() {
	go func() {
		log.Println(http.ListenAndServe("localhost:6060", nil))
	}()
	f, err := os.Create("mem.prof")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()
	runtime.MemProfileRate = 1

	set := compat.MustSet(compat.Alt[int](), compat.Alt[int64](), compat.Alt[string]())
	vis := compat.MustVisitor(set,
		compat.On(func(int) int { return 1 }),
		compat.On(func(int64) int { return 2 }),
		compat.On(func(string) int { return 3 }),
	)
	sv := strview.New("Hello, World! The quick brown fox jumps over the lazy dog.")

	for i := 0; i < 10000; i++ {
		v, _ := compat.Make(set, int64(i))
		vis.Visit(v)
		compat.Emplace(&v, "Hello, World!")
		vis.Visit(v)
		sv.Find("lazy")
		sv.FindLastOf("xz")
	}
	pprof.WriteHeapProfile(f)
	time.Sleep(5 * time.Minute)
}
