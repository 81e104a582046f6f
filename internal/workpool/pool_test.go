// seehuhn.de/go/fontprep - prepare glyph outlines for font compilation
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package workpool

import (
	"errors"
	"fmt"
	"runtime"
	"sync/atomic"
	"testing"
	"time"
)

func TestWorkers(t *testing.T) {
	p := New(3)
	defer p.Close()
	if p.Workers() != 3 {
		t.Errorf("Workers() = %d, want 3", p.Workers())
	}

	q := New(0)
	defer q.Close()
	if q.Workers() != runtime.GOMAXPROCS(0) {
		t.Errorf("Workers() = %d, want GOMAXPROCS", q.Workers())
	}
}

func TestRunAll(t *testing.T) {
	p := New(4)
	defer p.Close()

	var counter atomic.Int64
	jobs := make([]func() error, 100)
	for i := range jobs {
		jobs[i] = func() error {
			counter.Add(1)
			return nil
		}
	}
	if err := p.Run(jobs); err != nil {
		t.Fatal(err)
	}
	if counter.Load() != 100 {
		t.Errorf("counter = %d, want 100", counter.Load())
	}
}

func TestRunErrors(t *testing.T) {
	p := New(2)
	defer p.Close()

	errOdd := errors.New("odd")
	jobs := make([]func() error, 10)
	for i := range jobs {
		jobs[i] = func() error {
			if i%2 == 1 {
				return fmt.Errorf("job %d: %w", i, errOdd)
			}
			return nil
		}
	}
	err := p.Run(jobs)
	if !errors.Is(err, errOdd) {
		t.Fatalf("got %v, want errOdd", err)
	}
	if n := len(err.(interface{ Unwrap() []error }).Unwrap()); n != 5 {
		t.Errorf("got %d errors, want 5", n)
	}
}

func TestStealing(t *testing.T) {
	// one slow job must not hold up the jobs queued behind it
	p := New(2)
	defer p.Close()

	start := time.Now()
	jobs := []func() error{
		func() error { time.Sleep(50 * time.Millisecond); return nil },
	}
	for range 20 {
		jobs = append(jobs, func() error { time.Sleep(time.Millisecond); return nil })
	}
	if err := p.Run(jobs); err != nil {
		t.Fatal(err)
	}
	if d := time.Since(start); d > 2*time.Second {
		t.Errorf("run took %v", d)
	}
}

func TestClosed(t *testing.T) {
	p := New(2)
	p.Close()
	p.Close()
	if err := p.Run([]func() error{func() error { return nil }}); !errors.Is(err, ErrClosed) {
		t.Errorf("got %v, want ErrClosed", err)
	}
}

func TestRunDuringClose(t *testing.T) {
	for range 200 {
		p := New(2)

		var ran atomic.Int64
		jobs := make([]func() error, 50)
		for i := range jobs {
			jobs[i] = func() error {
				ran.Add(1)
				return nil
			}
		}

		result := make(chan error, 1)
		go func() { result <- p.Run(jobs) }()
		p.Close()

		select {
		case err := <-result:
			switch {
			case err == nil:
				if ran.Load() != 50 {
					t.Fatalf("%d of 50 jobs ran", ran.Load())
				}
			case errors.Is(err, ErrClosed):
				if ran.Load() != 0 {
					t.Fatalf("%d jobs ran on a closed pool", ran.Load())
				}
			default:
				t.Fatal(err)
			}
		case <-time.After(5 * time.Second):
			t.Fatal("Run did not return after Close")
		}
	}
}
