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

// Package workpool runs independent per-master jobs, such as loading and
// writing files, on a fixed set of goroutines.
package workpool

import (
	"errors"
	"runtime"
	"sync"
)

// Pool is a set of worker goroutines. Every worker has its own queue and
// steals from the other queues when its own queue is empty.
//
// A Pool is safe for concurrent use.
type Pool struct {
	workers int
	queues  []chan func()
	done    chan struct{}
	wg      sync.WaitGroup

	// mu is held for reading while jobs are queued, so that Close cannot
	// stop the workers before the queued jobs have been picked up.
	mu     sync.RWMutex
	closed bool
}

// New starts a pool with the given number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
func New(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	queueSize := max(workers*4, 8)

	p := &Pool{
		workers: workers,
		queues:  make([]chan func(), workers),
		done:    make(chan struct{}),
	}
	for i := range workers {
		p.queues[i] = make(chan func(), queueSize)
	}
	p.wg.Add(workers)
	for i := range workers {
		go p.worker(i)
	}
	return p
}

func (p *Pool) worker(id int) {
	defer p.wg.Done()

	own := p.queues[id]
	for {
		select {
		case <-p.done:
			p.drain(own)
			return
		case job := <-own:
			job()
		default:
			if job := p.steal(id); job != nil {
				job()
				continue
			}
			select {
			case <-p.done:
				p.drain(own)
				return
			case job := <-own:
				job()
			}
		}
	}
}

func (p *Pool) drain(queue chan func()) {
	for {
		select {
		case job := <-queue:
			job()
		default:
			return
		}
	}
}

func (p *Pool) steal(id int) func() {
	for i := range p.workers {
		if i == id {
			continue
		}
		select {
		case job := <-p.queues[i]:
			return job
		default:
		}
	}
	return nil
}

// ErrClosed is returned by [Pool.Run] after [Pool.Close] has been called.
var ErrClosed = errors.New("workpool: pool is closed")

// Run executes the jobs and waits for all of them to finish. The returned
// error joins the errors of all failed jobs, in job order.
func (p *Pool) Run(jobs []func() error) error {
	p.mu.RLock()
	if p.closed {
		p.mu.RUnlock()
		return ErrClosed
	}
	if len(jobs) == 0 {
		p.mu.RUnlock()
		return nil
	}

	errs := make([]error, len(jobs))
	var pending sync.WaitGroup
	pending.Add(len(jobs))
	for i, job := range jobs {
		wrapped := func() {
			defer pending.Done()
			errs[i] = job()
		}
		p.queues[i%p.workers] <- wrapped
	}
	p.mu.RUnlock()

	pending.Wait()
	return errors.Join(errs...)
}

// Close stops the workers after the queued jobs have run. Calls to Run
// which are still queueing jobs complete first.
// Close is safe to call multiple times.
func (p *Pool) Close() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	close(p.done)
	p.mu.Unlock()

	p.wg.Wait()
}

// Workers returns the number of workers in the pool.
func (p *Pool) Workers() int {
	return p.workers
}
