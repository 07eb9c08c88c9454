package main

import (
	"errors"
	"runtime"
	"sync"
)

// visitAll applies fn to every path, either sequentially or fanned
// out across a worker pool depending on concurrent.
func visitAll(paths []string, concurrent bool, fn func(path string) error) error {
	if !concurrent {
		for _, path := range paths {
			if err := fn(path); err != nil {
				return err
			}
		}
		return nil
	}
	return runConcurrent(paths, fn)
}

// visitAllIndexed is visitAll for callers that need a distinct
// closure per path (e.g. to write into a pre-sized results slice by
// index without a shared-slice race).
func visitAllIndexed(paths []string, fns []func(path string) error, concurrent bool) error {
	if !concurrent {
		for i, path := range paths {
			if err := fns[i](path); err != nil {
				return err
			}
		}
		return nil
	}
	numWorkers := runtime.NumCPU()
	if numWorkers > len(paths) {
		numWorkers = len(paths)
	}
	type job struct {
		path string
		fn   func(string) error
	}
	jobsChan := make(chan job, len(paths))
	errChan := make(chan error, len(paths))
	var wg sync.WaitGroup

	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobsChan {
				if err := j.fn(j.path); err != nil {
					errChan <- err
				}
			}
		}()
	}
	for i, path := range paths {
		jobsChan <- job{path: path, fn: fns[i]}
	}
	close(jobsChan)
	wg.Wait()
	close(errChan)

	var allErrors []error
	for err := range errChan {
		allErrors = append(allErrors, err)
	}
	if len(allErrors) > 0 {
		return errors.Join(allErrors...)
	}
	return nil
}

// runConcurrent fans work out across runtime.NumCPU() workers, one
// call to fn per path, joining every error encountered. It mirrors
// the wanflint worker-pool shape: buffered path/error channels plus a
// WaitGroup, no result ordering guarantees.
func runConcurrent(paths []string, fn func(path string) error) error {
	numWorkers := runtime.NumCPU()
	if numWorkers > len(paths) {
		numWorkers = len(paths)
	}
	pathsChan := make(chan string, len(paths))
	errChan := make(chan error, len(paths))
	var wg sync.WaitGroup

	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range pathsChan {
				if err := fn(path); err != nil {
					errChan <- err
				}
			}
		}()
	}

	for _, path := range paths {
		pathsChan <- path
	}
	close(pathsChan)
	wg.Wait()
	close(errChan)

	var allErrors []error
	for err := range errChan {
		allErrors = append(allErrors, err)
	}
	if len(allErrors) > 0 {
		return errors.Join(allErrors...)
	}
	return nil
}
