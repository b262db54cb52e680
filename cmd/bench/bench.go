package main

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"log"
	"os"
	"path"
	"runtime"
	"runtime/pprof"
	"strconv"
	"time"

	"github.com/spacemeshos/radix/notation"
	"github.com/spacemeshos/radix/service"
)

func main() {
	runtime.MemProfileRate = 0
	println("Memory profiling disabled.")

	cfg, err := loadConfig()
	if err != nil {
		os.Exit(1)
	}

	if cfg.CPU {
		dir, err := os.Getwd()
		if err != nil {
			log.Fatal("cant get current dir", err)
		}

		profFilePath := path.Join(dir, "./CPU.prof")
		fmt.Printf("CPU profile: %s\n", profFilePath)

		f, err := os.Create(profFilePath)
		if err != nil {
			log.Fatal("could not create CPU profile: ", err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal("could not start CPU profile: ", err)
		}
		defer pprof.StopCPUProfile()

		println("Cpu profiling enabled and started...")
	}

	numInputs := 1 << cfg.N
	values, inputs := randomInputs(numInputs)
	fmt.Printf("inputs: %d, workers: %d, cache: %d\n", numInputs, cfg.Workers, cfg.Cache)

	svc, err := service.New(context.Background(), service.WithConfig(service.Config{
		CacheSize:    cfg.Cache,
		BatchWorkers: cfg.Workers,
	}))
	if err != nil {
		log.Fatal("could not create service: ", err)
	}

	t1 := time.Now()
	results, err := svc.ConvertBatch(context.Background(), inputs)
	if err != nil {
		log.Fatal("conversion failed: ", err)
	}
	e := time.Since(t1)

	for i, res := range results {
		if want := strconv.FormatUint(values[i], 10); res.Decimal != want {
			log.Fatalf("%s converted to %s, expected %s", inputs[i], res.Decimal, want)
		}
	}

	fmt.Printf("Converted in %s (%.0f conversions per second)\n", e, float64(numInputs)/e.Seconds())
}

// randomInputs returns n random non-zero values, each written in one of the
// numeral systems in turn.
func randomInputs(n int) ([]uint64, []string) {
	buf := make([]byte, 8*n)
	if _, err := rand.Read(buf); err != nil {
		panic("no entropy")
	}
	systems := notation.Systems()
	values := make([]uint64, n)
	inputs := make([]string, n)
	for i := range values {
		v := binary.LittleEndian.Uint64(buf[i*8:]) | 1
		s := systems[i%len(systems)]
		values[i] = v
		inputs[i] = strconv.FormatUint(v, int(s.Base())) + string(s.Suffix())
	}
	return values, inputs
}
