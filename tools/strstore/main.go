package main

import "flag"
import "fmt"
import "time"

import "github.com/bnclabs/gostrstore/api"
import "github.com/bnclabs/gostrstore/lib"
import "github.com/bnclabs/gostrstore/slab"
import "github.com/bnclabs/gostrstore/strstore"
import "github.com/bnclabs/golog"
import s "github.com/bnclabs/gosettings"
import "github.com/cloudfoundry/gosigar"
import humanize "github.com/dustin/go-humanize"

var options struct {
	capacity    int64
	slabsize    int64
	maxtextsize int64
	load        string
	usemmap     bool
	n           int
	seed        int
	prodfile    string
	bagdir      string
	rounds      int
	pretty      bool
	loglevel    string
}

func argParse() {
	flag.Int64Var(&options.capacity, "capacity", 0,
		"arena capacity in bytes, 0 picks half of free system memory")
	flag.Int64Var(&options.slabsize, "slabsize", slab.Slabsize,
		"size of a single arena slab in bytes")
	flag.Int64Var(&options.maxtextsize, "maxtextsize", api.MaxTextsize,
		"texts longer than this are refused by the store")
	flag.StringVar(&options.load, "load", "",
		"intern newline separated texts from file")
	flag.BoolVar(&options.usemmap, "mmap", false,
		"access the load file via a memory map")
	flag.IntVar(&options.n, "n", 1000000,
		"number of texts to generate")
	flag.IntVar(&options.seed, "seed", 0,
		"random seed, 0 seeds from the clock")
	flag.StringVar(&options.prodfile, "prodfile", "",
		"generate texts from monster production file")
	flag.StringVar(&options.bagdir, "bagdir", "",
		"bag directory for monster sample data")
	flag.IntVar(&options.rounds, "rounds", 2,
		"number of times to intern the whole workload")
	flag.BoolVar(&options.pretty, "pretty", false,
		"pretty print final statistics")
	flag.StringVar(&options.loglevel, "log", "info",
		"console log level")
	flag.Parse()

	if options.capacity == 0 {
		_, _, free := getsysmem()
		options.capacity = int64(free / 2)
	}
	if options.seed == 0 {
		options.seed = int(time.Now().UnixNano())
	}
}

func main() {
	argParse()
	log.SetLogger(nil, map[string]interface{}{"log.level": options.loglevel})
	strstore.LogComponents("all")

	texts := maketexts()
	fmt.Printf("interning %v texts for %v rounds, seed %v\n",
		len(texts), options.rounds, options.seed)

	setts := s.Settings{"slabsize": options.slabsize}
	arena := slab.NewArena(options.capacity, setts)
	defer arena.Release()
	setts = s.Settings{"maxtextsize": options.maxtextsize}
	store := strstore.NewStore("cmdline", arena, setts)

	for round := 0; round < options.rounds; round++ {
		h := lib.NewhistogramInt64()
		now := time.Now()
		for _, text := range texts {
			start := time.Now()
			if _, err := store.InternBytes(text); err != nil {
				fmt.Printf("intern: %v\n", err)
				return
			}
			h.Add(time.Since(start).Nanoseconds())
		}
		fmt.Printf("round %v took %v\n", round, time.Since(now))
		fmt.Printf("round %v latency(ns) %v\n", round, h.Logstring())
	}

	store.Log()
	fmt.Println(lib.Prettystats(store.Stats(), options.pretty))
	capacity, heap, alloc, overhead := arena.Info()
	fmsg := "arena capacity:%v heap:%v alloc:%v overhead:%v slabs:%v\n"
	fmt.Printf(fmsg,
		humanize.Bytes(uint64(capacity)), humanize.Bytes(uint64(heap)),
		humanize.Bytes(uint64(alloc)), humanize.Bytes(uint64(overhead)),
		arena.Slabcount())
	store.Release()
}

func maketexts() [][]byte {
	switch {
	case options.load != "":
		return loadfile(options.load, options.usemmap)
	case options.prodfile != "":
		seed := uint64(options.seed)
		return generatetexts(options.n, options.prodfile, options.bagdir, seed)
	}
	return randomtexts(options.n, options.seed)
}

func getsysmem() (total, used, free uint64) {
	mem := sigar.Mem{}
	mem.Get()
	return mem.Total, mem.Used, mem.Free
}
