// This file was generated by counterfeiter
package fakes

import (
	"sync"

	"code.cloudfoundry.org/auctionhouse/auctiontypes"
)

type FakeRandomizer struct {
	IntnStub        func(n int) int
	intnMutex       sync.RWMutex
	intnArgsForCall []struct {
		n int
	}
	intnReturns struct {
		result1 int
	}
	intnReturnsOnCall map[int]struct {
		result1 int
	}
}

func (fake *FakeRandomizer) Intn(n int) int {
	fake.intnMutex.Lock()
	ret, specificReturn := fake.intnReturnsOnCall[len(fake.intnArgsForCall)]
	fake.intnArgsForCall = append(fake.intnArgsForCall, struct {
		n int
	}{n})
	stub := fake.IntnStub
	returns := fake.intnReturns
	fake.intnMutex.Unlock()
	if stub != nil {
		return stub(n)
	}
	if specificReturn {
		return ret.result1
	}
	return returns.result1
}

func (fake *FakeRandomizer) IntnCallCount() int {
	fake.intnMutex.RLock()
	defer fake.intnMutex.RUnlock()
	return len(fake.intnArgsForCall)
}

func (fake *FakeRandomizer) IntnArgsForCall(i int) int {
	fake.intnMutex.RLock()
	defer fake.intnMutex.RUnlock()
	return fake.intnArgsForCall[i].n
}

func (fake *FakeRandomizer) IntnReturns(result1 int) {
	fake.intnMutex.Lock()
	defer fake.intnMutex.Unlock()
	fake.IntnStub = nil
	fake.intnReturns = struct {
		result1 int
	}{result1}
}

func (fake *FakeRandomizer) IntnReturnsOnCall(i int, result1 int) {
	fake.intnMutex.Lock()
	defer fake.intnMutex.Unlock()
	fake.IntnStub = nil
	if fake.intnReturnsOnCall == nil {
		fake.intnReturnsOnCall = make(map[int]struct {
			result1 int
		})
	}
	fake.intnReturnsOnCall[i] = struct {
		result1 int
	}{result1}
}

var _ auctiontypes.Randomizer = new(FakeRandomizer)
