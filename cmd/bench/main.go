// Command bench prints the throughput of every cipher and hash function.
package main

import (
	"crypto/rand"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jiegec/crypto"
)

// job is one throughput measurement.
type job struct {
	name string
	run  func(input []byte) error
}

type result struct {
	name    string
	elapsed time.Duration
}

func randomBytes(n int) []byte {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		log.Fatal(err)
	}
	return b
}

func cipherJobs() []job {
	var jobs []job
	for _, alg := range crypto.Algorithms() {
		alg := alg
		key := randomBytes(alg.KeySize())
		iv := randomBytes(alg.BlockSize())
		for _, dir := range []crypto.Direction{crypto.Encrypt, crypto.Decrypt} {
			dir := dir
			jobs = append(jobs, job{
				name: fmt.Sprintf("%s %s", alg, directionName(dir)),
				run: func(input []byte) error {
					_, err := crypto.CBC(alg, dir, input, key, iv)
					return err
				},
			})
		}
	}

	key := randomBytes(128)
	for _, dir := range []crypto.Direction{crypto.Encrypt, crypto.Decrypt} {
		jobs = append(jobs, job{
			name: "rc4 " + directionName(dir),
			run: func(input []byte) error {
				_, err := crypto.RC4(input, key)
				return err
			},
		})
	}
	return jobs
}

func hashJobs() []job {
	var jobs []job
	for _, h := range crypto.Hashes() {
		h := h
		jobs = append(jobs, job{
			name: h.String(),
			run: func(input []byte) error {
				h.Sum(input)
				return nil
			},
		})
	}
	return jobs
}

func directionName(dir crypto.Direction) string {
	if dir == crypto.Decrypt {
		return "Decrypt"
	}
	return "Encrypt"
}

// measure runs every job repeat times over input, at most limit jobs at a
// time. Results keep the order of jobs.
func measure(jobs []job, input []byte, repeat, limit int) ([]result, error) {
	results := make([]result, len(jobs))
	var g errgroup.Group
	g.SetLimit(limit)
	for i, j := range jobs {
		i, j := i, j
		g.Go(func() error {
			start := time.Now()
			for n := 0; n < repeat; n++ {
				if err := j.run(input); err != nil {
					return fmt.Errorf("%s: %w", j.name, err)
				}
			}
			results[i] = result{name: j.name, elapsed: time.Since(start)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func report(w io.Writer, results []result, size, repeat int) {
	for _, r := range results {
		seconds := r.elapsed.Seconds()
		if seconds == 0 {
			seconds = 1e-9
		}
		throughput := float64(size) * float64(repeat) / seconds
		fmt.Fprintf(w, "Algo %s Throughput: %.2f Mbps or %.2f MiB/s\n",
			r.name, throughput*8/1024/1024, throughput/1024/1024)
	}
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("bench: ")

	repeat := flag.Int("n", 1000, "repetitions per algorithm")
	size := flag.Int("size", 16*1024/8, "input size in bytes, rounded down to a multiple of 16")
	jobs := flag.Int("j", 1, "measurements to run concurrently")
	flag.Parse()

	if *repeat < 1 || *size < 16 || *jobs < 1 {
		flag.Usage()
		os.Exit(1)
	}
	input := randomBytes(*size / 16 * 16)

	all := append(cipherJobs(), hashJobs()...)
	results, err := measure(all, input, *repeat, *jobs)
	if err != nil {
		log.Fatal(err)
	}
	report(os.Stdout, results, len(input), *repeat)
}
