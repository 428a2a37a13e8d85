// This file was generated by counterfeiter
package fakes

import (
	"sync"

	"code.cloudfoundry.org/auctionhouse/auctiontypes"
)

type FakeAuctionHouse struct {
	CreateAuctionStub        func(productID int, requiredParticipants int, maxRounds int) (string, error)
	createAuctionMutex       sync.RWMutex
	createAuctionArgsForCall []struct {
		productID            int
		requiredParticipants int
		maxRounds            int
	}
	createAuctionReturns struct {
		result1 string
		result2 error
	}
	createAuctionReturnsOnCall map[int]struct {
		result1 string
		result2 error
	}
	OpenAuctionStub        func(participantID int, maxBid int, isActive bool, productID int, requiredParticipants int, maxRounds int) (string, error)
	openAuctionMutex       sync.RWMutex
	openAuctionArgsForCall []struct {
		participantID        int
		maxBid               int
		isActive             bool
		productID            int
		requiredParticipants int
		maxRounds            int
	}
	openAuctionReturns struct {
		result1 string
		result2 error
	}
	openAuctionReturnsOnCall map[int]struct {
		result1 string
		result2 error
	}
	SubscribeStub        func(auctionGuid string, participantID int, maxBid int, isActive bool) error
	subscribeMutex       sync.RWMutex
	subscribeArgsForCall []struct {
		auctionGuid   string
		participantID int
		maxBid        int
		isActive      bool
	}
	subscribeReturns struct {
		result1 error
	}
	subscribeReturnsOnCall map[int]struct {
		result1 error
	}
	TriggerStartStub        func(auctionGuid string) error
	triggerStartMutex       sync.RWMutex
	triggerStartArgsForCall []struct {
		auctionGuid string
	}
	triggerStartReturns struct {
		result1 error
	}
	triggerStartReturnsOnCall map[int]struct {
		result1 error
	}
	SubmitBidStub        func(auctionGuid string, amount int) error
	submitBidMutex       sync.RWMutex
	submitBidArgsForCall []struct {
		auctionGuid string
		amount      int
	}
	submitBidReturns struct {
		result1 error
	}
	submitBidReturnsOnCall map[int]struct {
		result1 error
	}
	AuctionStateStub        func(auctionGuid string) (auctiontypes.AuctionState, error)
	auctionStateMutex       sync.RWMutex
	auctionStateArgsForCall []struct {
		auctionGuid string
	}
	auctionStateReturns struct {
		result1 auctiontypes.AuctionState
		result2 error
	}
	auctionStateReturnsOnCall map[int]struct {
		result1 auctiontypes.AuctionState
		result2 error
	}
	AuctionsStub        func() []auctiontypes.AuctionState
	auctionsMutex       sync.RWMutex
	auctionsArgsForCall []struct {
	}
	auctionsReturns struct {
		result1 []auctiontypes.AuctionState
	}
	auctionsReturnsOnCall map[int]struct {
		result1 []auctiontypes.AuctionState
	}
	ParticipantsStub        func() []auctiontypes.ParticipantInfo
	participantsMutex       sync.RWMutex
	participantsArgsForCall []struct {
	}
	participantsReturns struct {
		result1 []auctiontypes.ParticipantInfo
	}
	participantsReturnsOnCall map[int]struct {
		result1 []auctiontypes.ParticipantInfo
	}
	BrokersStub        func() []auctiontypes.BrokerInfo
	brokersMutex       sync.RWMutex
	brokersArgsForCall []struct {
	}
	brokersReturns struct {
		result1 []auctiontypes.BrokerInfo
	}
	brokersReturnsOnCall map[int]struct {
		result1 []auctiontypes.BrokerInfo
	}
	ProductsStub        func() []auctiontypes.ProductInfo
	productsMutex       sync.RWMutex
	productsArgsForCall []struct {
	}
	productsReturns struct {
		result1 []auctiontypes.ProductInfo
	}
	productsReturnsOnCall map[int]struct {
		result1 []auctiontypes.ProductInfo
	}
	AddProductStub        func(product auctiontypes.ProductInfo) error
	addProductMutex       sync.RWMutex
	addProductArgsForCall []struct {
		product auctiontypes.ProductInfo
	}
	addProductReturns struct {
		result1 error
	}
	addProductReturnsOnCall map[int]struct {
		result1 error
	}
}

func (fake *FakeAuctionHouse) CreateAuction(productID int, requiredParticipants int, maxRounds int) (string, error) {
	fake.createAuctionMutex.Lock()
	ret, specificReturn := fake.createAuctionReturnsOnCall[len(fake.createAuctionArgsForCall)]
	fake.createAuctionArgsForCall = append(fake.createAuctionArgsForCall, struct {
		productID            int
		requiredParticipants int
		maxRounds            int
	}{productID, requiredParticipants, maxRounds})
	stub := fake.CreateAuctionStub
	fakeReturns := fake.createAuctionReturns
	fake.createAuctionMutex.Unlock()
	if stub != nil {
		return stub(productID, requiredParticipants, maxRounds)
	}
	if specificReturn {
		return ret.result1, ret.result2
	}
	return fakeReturns.result1, fakeReturns.result2
}

func (fake *FakeAuctionHouse) CreateAuctionCallCount() int {
	fake.createAuctionMutex.RLock()
	defer fake.createAuctionMutex.RUnlock()
	return len(fake.createAuctionArgsForCall)
}

func (fake *FakeAuctionHouse) CreateAuctionArgsForCall(i int) (int, int, int) {
	fake.createAuctionMutex.RLock()
	defer fake.createAuctionMutex.RUnlock()
	argsForCall := fake.createAuctionArgsForCall[i]
	return argsForCall.productID, argsForCall.requiredParticipants, argsForCall.maxRounds
}

func (fake *FakeAuctionHouse) CreateAuctionReturns(result1 string, result2 error) {
	fake.createAuctionMutex.Lock()
	defer fake.createAuctionMutex.Unlock()
	fake.CreateAuctionStub = nil
	fake.createAuctionReturns = struct {
		result1 string
		result2 error
	}{result1, result2}
}

func (fake *FakeAuctionHouse) CreateAuctionReturnsOnCall(i int, result1 string, result2 error) {
	fake.createAuctionMutex.Lock()
	defer fake.createAuctionMutex.Unlock()
	fake.CreateAuctionStub = nil
	if fake.createAuctionReturnsOnCall == nil {
		fake.createAuctionReturnsOnCall = make(map[int]struct {
			result1 string
			result2 error
		})
	}
	fake.createAuctionReturnsOnCall[i] = struct {
		result1 string
		result2 error
	}{result1, result2}
}

func (fake *FakeAuctionHouse) OpenAuction(participantID int, maxBid int, isActive bool, productID int, requiredParticipants int, maxRounds int) (string, error) {
	fake.openAuctionMutex.Lock()
	ret, specificReturn := fake.openAuctionReturnsOnCall[len(fake.openAuctionArgsForCall)]
	fake.openAuctionArgsForCall = append(fake.openAuctionArgsForCall, struct {
		participantID        int
		maxBid               int
		isActive             bool
		productID            int
		requiredParticipants int
		maxRounds            int
	}{participantID, maxBid, isActive, productID, requiredParticipants, maxRounds})
	stub := fake.OpenAuctionStub
	fakeReturns := fake.openAuctionReturns
	fake.openAuctionMutex.Unlock()
	if stub != nil {
		return stub(participantID, maxBid, isActive, productID, requiredParticipants, maxRounds)
	}
	if specificReturn {
		return ret.result1, ret.result2
	}
	return fakeReturns.result1, fakeReturns.result2
}

func (fake *FakeAuctionHouse) OpenAuctionCallCount() int {
	fake.openAuctionMutex.RLock()
	defer fake.openAuctionMutex.RUnlock()
	return len(fake.openAuctionArgsForCall)
}

func (fake *FakeAuctionHouse) OpenAuctionArgsForCall(i int) (int, int, bool, int, int, int) {
	fake.openAuctionMutex.RLock()
	defer fake.openAuctionMutex.RUnlock()
	argsForCall := fake.openAuctionArgsForCall[i]
	return argsForCall.participantID, argsForCall.maxBid, argsForCall.isActive, argsForCall.productID, argsForCall.requiredParticipants, argsForCall.maxRounds
}

func (fake *FakeAuctionHouse) OpenAuctionReturns(result1 string, result2 error) {
	fake.openAuctionMutex.Lock()
	defer fake.openAuctionMutex.Unlock()
	fake.OpenAuctionStub = nil
	fake.openAuctionReturns = struct {
		result1 string
		result2 error
	}{result1, result2}
}

func (fake *FakeAuctionHouse) OpenAuctionReturnsOnCall(i int, result1 string, result2 error) {
	fake.openAuctionMutex.Lock()
	defer fake.openAuctionMutex.Unlock()
	fake.OpenAuctionStub = nil
	if fake.openAuctionReturnsOnCall == nil {
		fake.openAuctionReturnsOnCall = make(map[int]struct {
			result1 string
			result2 error
		})
	}
	fake.openAuctionReturnsOnCall[i] = struct {
		result1 string
		result2 error
	}{result1, result2}
}

func (fake *FakeAuctionHouse) Subscribe(auctionGuid string, participantID int, maxBid int, isActive bool) error {
	fake.subscribeMutex.Lock()
	ret, specificReturn := fake.subscribeReturnsOnCall[len(fake.subscribeArgsForCall)]
	fake.subscribeArgsForCall = append(fake.subscribeArgsForCall, struct {
		auctionGuid   string
		participantID int
		maxBid        int
		isActive      bool
	}{auctionGuid, participantID, maxBid, isActive})
	stub := fake.SubscribeStub
	fakeReturns := fake.subscribeReturns
	fake.subscribeMutex.Unlock()
	if stub != nil {
		return stub(auctionGuid, participantID, maxBid, isActive)
	}
	if specificReturn {
		return ret.result1
	}
	return fakeReturns.result1
}

func (fake *FakeAuctionHouse) SubscribeCallCount() int {
	fake.subscribeMutex.RLock()
	defer fake.subscribeMutex.RUnlock()
	return len(fake.subscribeArgsForCall)
}

func (fake *FakeAuctionHouse) SubscribeArgsForCall(i int) (string, int, int, bool) {
	fake.subscribeMutex.RLock()
	defer fake.subscribeMutex.RUnlock()
	argsForCall := fake.subscribeArgsForCall[i]
	return argsForCall.auctionGuid, argsForCall.participantID, argsForCall.maxBid, argsForCall.isActive
}

func (fake *FakeAuctionHouse) SubscribeReturns(result1 error) {
	fake.subscribeMutex.Lock()
	defer fake.subscribeMutex.Unlock()
	fake.SubscribeStub = nil
	fake.subscribeReturns = struct {
		result1 error
	}{result1}
}

func (fake *FakeAuctionHouse) SubscribeReturnsOnCall(i int, result1 error) {
	fake.subscribeMutex.Lock()
	defer fake.subscribeMutex.Unlock()
	fake.SubscribeStub = nil
	if fake.subscribeReturnsOnCall == nil {
		fake.subscribeReturnsOnCall = make(map[int]struct {
			result1 error
		})
	}
	fake.subscribeReturnsOnCall[i] = struct {
		result1 error
	}{result1}
}

func (fake *FakeAuctionHouse) TriggerStart(auctionGuid string) error {
	fake.triggerStartMutex.Lock()
	ret, specificReturn := fake.triggerStartReturnsOnCall[len(fake.triggerStartArgsForCall)]
	fake.triggerStartArgsForCall = append(fake.triggerStartArgsForCall, struct {
		auctionGuid string
	}{auctionGuid})
	stub := fake.TriggerStartStub
	fakeReturns := fake.triggerStartReturns
	fake.triggerStartMutex.Unlock()
	if stub != nil {
		return stub(auctionGuid)
	}
	if specificReturn {
		return ret.result1
	}
	return fakeReturns.result1
}

func (fake *FakeAuctionHouse) TriggerStartCallCount() int {
	fake.triggerStartMutex.RLock()
	defer fake.triggerStartMutex.RUnlock()
	return len(fake.triggerStartArgsForCall)
}

func (fake *FakeAuctionHouse) TriggerStartArgsForCall(i int) string {
	fake.triggerStartMutex.RLock()
	defer fake.triggerStartMutex.RUnlock()
	argsForCall := fake.triggerStartArgsForCall[i]
	return argsForCall.auctionGuid
}

func (fake *FakeAuctionHouse) TriggerStartReturns(result1 error) {
	fake.triggerStartMutex.Lock()
	defer fake.triggerStartMutex.Unlock()
	fake.TriggerStartStub = nil
	fake.triggerStartReturns = struct {
		result1 error
	}{result1}
}

func (fake *FakeAuctionHouse) TriggerStartReturnsOnCall(i int, result1 error) {
	fake.triggerStartMutex.Lock()
	defer fake.triggerStartMutex.Unlock()
	fake.TriggerStartStub = nil
	if fake.triggerStartReturnsOnCall == nil {
		fake.triggerStartReturnsOnCall = make(map[int]struct {
			result1 error
		})
	}
	fake.triggerStartReturnsOnCall[i] = struct {
		result1 error
	}{result1}
}

func (fake *FakeAuctionHouse) SubmitBid(auctionGuid string, amount int) error {
	fake.submitBidMutex.Lock()
	ret, specificReturn := fake.submitBidReturnsOnCall[len(fake.submitBidArgsForCall)]
	fake.submitBidArgsForCall = append(fake.submitBidArgsForCall, struct {
		auctionGuid string
		amount      int
	}{auctionGuid, amount})
	stub := fake.SubmitBidStub
	fakeReturns := fake.submitBidReturns
	fake.submitBidMutex.Unlock()
	if stub != nil {
		return stub(auctionGuid, amount)
	}
	if specificReturn {
		return ret.result1
	}
	return fakeReturns.result1
}

func (fake *FakeAuctionHouse) SubmitBidCallCount() int {
	fake.submitBidMutex.RLock()
	defer fake.submitBidMutex.RUnlock()
	return len(fake.submitBidArgsForCall)
}

func (fake *FakeAuctionHouse) SubmitBidArgsForCall(i int) (string, int) {
	fake.submitBidMutex.RLock()
	defer fake.submitBidMutex.RUnlock()
	argsForCall := fake.submitBidArgsForCall[i]
	return argsForCall.auctionGuid, argsForCall.amount
}

func (fake *FakeAuctionHouse) SubmitBidReturns(result1 error) {
	fake.submitBidMutex.Lock()
	defer fake.submitBidMutex.Unlock()
	fake.SubmitBidStub = nil
	fake.submitBidReturns = struct {
		result1 error
	}{result1}
}

func (fake *FakeAuctionHouse) SubmitBidReturnsOnCall(i int, result1 error) {
	fake.submitBidMutex.Lock()
	defer fake.submitBidMutex.Unlock()
	fake.SubmitBidStub = nil
	if fake.submitBidReturnsOnCall == nil {
		fake.submitBidReturnsOnCall = make(map[int]struct {
			result1 error
		})
	}
	fake.submitBidReturnsOnCall[i] = struct {
		result1 error
	}{result1}
}

func (fake *FakeAuctionHouse) AuctionState(auctionGuid string) (auctiontypes.AuctionState, error) {
	fake.auctionStateMutex.Lock()
	ret, specificReturn := fake.auctionStateReturnsOnCall[len(fake.auctionStateArgsForCall)]
	fake.auctionStateArgsForCall = append(fake.auctionStateArgsForCall, struct {
		auctionGuid string
	}{auctionGuid})
	stub := fake.AuctionStateStub
	fakeReturns := fake.auctionStateReturns
	fake.auctionStateMutex.Unlock()
	if stub != nil {
		return stub(auctionGuid)
	}
	if specificReturn {
		return ret.result1, ret.result2
	}
	return fakeReturns.result1, fakeReturns.result2
}

func (fake *FakeAuctionHouse) AuctionStateCallCount() int {
	fake.auctionStateMutex.RLock()
	defer fake.auctionStateMutex.RUnlock()
	return len(fake.auctionStateArgsForCall)
}

func (fake *FakeAuctionHouse) AuctionStateArgsForCall(i int) string {
	fake.auctionStateMutex.RLock()
	defer fake.auctionStateMutex.RUnlock()
	argsForCall := fake.auctionStateArgsForCall[i]
	return argsForCall.auctionGuid
}

func (fake *FakeAuctionHouse) AuctionStateReturns(result1 auctiontypes.AuctionState, result2 error) {
	fake.auctionStateMutex.Lock()
	defer fake.auctionStateMutex.Unlock()
	fake.AuctionStateStub = nil
	fake.auctionStateReturns = struct {
		result1 auctiontypes.AuctionState
		result2 error
	}{result1, result2}
}

func (fake *FakeAuctionHouse) AuctionStateReturnsOnCall(i int, result1 auctiontypes.AuctionState, result2 error) {
	fake.auctionStateMutex.Lock()
	defer fake.auctionStateMutex.Unlock()
	fake.AuctionStateStub = nil
	if fake.auctionStateReturnsOnCall == nil {
		fake.auctionStateReturnsOnCall = make(map[int]struct {
			result1 auctiontypes.AuctionState
			result2 error
		})
	}
	fake.auctionStateReturnsOnCall[i] = struct {
		result1 auctiontypes.AuctionState
		result2 error
	}{result1, result2}
}

func (fake *FakeAuctionHouse) Auctions() []auctiontypes.AuctionState {
	fake.auctionsMutex.Lock()
	ret, specificReturn := fake.auctionsReturnsOnCall[len(fake.auctionsArgsForCall)]
	fake.auctionsArgsForCall = append(fake.auctionsArgsForCall, struct {
	}{})
	stub := fake.AuctionsStub
	fakeReturns := fake.auctionsReturns
	fake.auctionsMutex.Unlock()
	if stub != nil {
		return stub()
	}
	if specificReturn {
		return ret.result1
	}
	return fakeReturns.result1
}

func (fake *FakeAuctionHouse) AuctionsCallCount() int {
	fake.auctionsMutex.RLock()
	defer fake.auctionsMutex.RUnlock()
	return len(fake.auctionsArgsForCall)
}

func (fake *FakeAuctionHouse) AuctionsReturns(result1 []auctiontypes.AuctionState) {
	fake.auctionsMutex.Lock()
	defer fake.auctionsMutex.Unlock()
	fake.AuctionsStub = nil
	fake.auctionsReturns = struct {
		result1 []auctiontypes.AuctionState
	}{result1}
}

func (fake *FakeAuctionHouse) AuctionsReturnsOnCall(i int, result1 []auctiontypes.AuctionState) {
	fake.auctionsMutex.Lock()
	defer fake.auctionsMutex.Unlock()
	fake.AuctionsStub = nil
	if fake.auctionsReturnsOnCall == nil {
		fake.auctionsReturnsOnCall = make(map[int]struct {
			result1 []auctiontypes.AuctionState
		})
	}
	fake.auctionsReturnsOnCall[i] = struct {
		result1 []auctiontypes.AuctionState
	}{result1}
}

func (fake *FakeAuctionHouse) Participants() []auctiontypes.ParticipantInfo {
	fake.participantsMutex.Lock()
	ret, specificReturn := fake.participantsReturnsOnCall[len(fake.participantsArgsForCall)]
	fake.participantsArgsForCall = append(fake.participantsArgsForCall, struct {
	}{})
	stub := fake.ParticipantsStub
	fakeReturns := fake.participantsReturns
	fake.participantsMutex.Unlock()
	if stub != nil {
		return stub()
	}
	if specificReturn {
		return ret.result1
	}
	return fakeReturns.result1
}

func (fake *FakeAuctionHouse) ParticipantsCallCount() int {
	fake.participantsMutex.RLock()
	defer fake.participantsMutex.RUnlock()
	return len(fake.participantsArgsForCall)
}

func (fake *FakeAuctionHouse) ParticipantsReturns(result1 []auctiontypes.ParticipantInfo) {
	fake.participantsMutex.Lock()
	defer fake.participantsMutex.Unlock()
	fake.ParticipantsStub = nil
	fake.participantsReturns = struct {
		result1 []auctiontypes.ParticipantInfo
	}{result1}
}

func (fake *FakeAuctionHouse) ParticipantsReturnsOnCall(i int, result1 []auctiontypes.ParticipantInfo) {
	fake.participantsMutex.Lock()
	defer fake.participantsMutex.Unlock()
	fake.ParticipantsStub = nil
	if fake.participantsReturnsOnCall == nil {
		fake.participantsReturnsOnCall = make(map[int]struct {
			result1 []auctiontypes.ParticipantInfo
		})
	}
	fake.participantsReturnsOnCall[i] = struct {
		result1 []auctiontypes.ParticipantInfo
	}{result1}
}

func (fake *FakeAuctionHouse) Brokers() []auctiontypes.BrokerInfo {
	fake.brokersMutex.Lock()
	ret, specificReturn := fake.brokersReturnsOnCall[len(fake.brokersArgsForCall)]
	fake.brokersArgsForCall = append(fake.brokersArgsForCall, struct {
	}{})
	stub := fake.BrokersStub
	fakeReturns := fake.brokersReturns
	fake.brokersMutex.Unlock()
	if stub != nil {
		return stub()
	}
	if specificReturn {
		return ret.result1
	}
	return fakeReturns.result1
}

func (fake *FakeAuctionHouse) BrokersCallCount() int {
	fake.brokersMutex.RLock()
	defer fake.brokersMutex.RUnlock()
	return len(fake.brokersArgsForCall)
}

func (fake *FakeAuctionHouse) BrokersReturns(result1 []auctiontypes.BrokerInfo) {
	fake.brokersMutex.Lock()
	defer fake.brokersMutex.Unlock()
	fake.BrokersStub = nil
	fake.brokersReturns = struct {
		result1 []auctiontypes.BrokerInfo
	}{result1}
}

func (fake *FakeAuctionHouse) BrokersReturnsOnCall(i int, result1 []auctiontypes.BrokerInfo) {
	fake.brokersMutex.Lock()
	defer fake.brokersMutex.Unlock()
	fake.BrokersStub = nil
	if fake.brokersReturnsOnCall == nil {
		fake.brokersReturnsOnCall = make(map[int]struct {
			result1 []auctiontypes.BrokerInfo
		})
	}
	fake.brokersReturnsOnCall[i] = struct {
		result1 []auctiontypes.BrokerInfo
	}{result1}
}

func (fake *FakeAuctionHouse) Products() []auctiontypes.ProductInfo {
	fake.productsMutex.Lock()
	ret, specificReturn := fake.productsReturnsOnCall[len(fake.productsArgsForCall)]
	fake.productsArgsForCall = append(fake.productsArgsForCall, struct {
	}{})
	stub := fake.ProductsStub
	fakeReturns := fake.productsReturns
	fake.productsMutex.Unlock()
	if stub != nil {
		return stub()
	}
	if specificReturn {
		return ret.result1
	}
	return fakeReturns.result1
}

func (fake *FakeAuctionHouse) ProductsCallCount() int {
	fake.productsMutex.RLock()
	defer fake.productsMutex.RUnlock()
	return len(fake.productsArgsForCall)
}

func (fake *FakeAuctionHouse) ProductsReturns(result1 []auctiontypes.ProductInfo) {
	fake.productsMutex.Lock()
	defer fake.productsMutex.Unlock()
	fake.ProductsStub = nil
	fake.productsReturns = struct {
		result1 []auctiontypes.ProductInfo
	}{result1}
}

func (fake *FakeAuctionHouse) ProductsReturnsOnCall(i int, result1 []auctiontypes.ProductInfo) {
	fake.productsMutex.Lock()
	defer fake.productsMutex.Unlock()
	fake.ProductsStub = nil
	if fake.productsReturnsOnCall == nil {
		fake.productsReturnsOnCall = make(map[int]struct {
			result1 []auctiontypes.ProductInfo
		})
	}
	fake.productsReturnsOnCall[i] = struct {
		result1 []auctiontypes.ProductInfo
	}{result1}
}

func (fake *FakeAuctionHouse) AddProduct(product auctiontypes.ProductInfo) error {
	fake.addProductMutex.Lock()
	ret, specificReturn := fake.addProductReturnsOnCall[len(fake.addProductArgsForCall)]
	fake.addProductArgsForCall = append(fake.addProductArgsForCall, struct {
		product auctiontypes.ProductInfo
	}{product})
	stub := fake.AddProductStub
	fakeReturns := fake.addProductReturns
	fake.addProductMutex.Unlock()
	if stub != nil {
		return stub(product)
	}
	if specificReturn {
		return ret.result1
	}
	return fakeReturns.result1
}

func (fake *FakeAuctionHouse) AddProductCallCount() int {
	fake.addProductMutex.RLock()
	defer fake.addProductMutex.RUnlock()
	return len(fake.addProductArgsForCall)
}

func (fake *FakeAuctionHouse) AddProductArgsForCall(i int) auctiontypes.ProductInfo {
	fake.addProductMutex.RLock()
	defer fake.addProductMutex.RUnlock()
	argsForCall := fake.addProductArgsForCall[i]
	return argsForCall.product
}

func (fake *FakeAuctionHouse) AddProductReturns(result1 error) {
	fake.addProductMutex.Lock()
	defer fake.addProductMutex.Unlock()
	fake.AddProductStub = nil
	fake.addProductReturns = struct {
		result1 error
	}{result1}
}

func (fake *FakeAuctionHouse) AddProductReturnsOnCall(i int, result1 error) {
	fake.addProductMutex.Lock()
	defer fake.addProductMutex.Unlock()
	fake.AddProductStub = nil
	if fake.addProductReturnsOnCall == nil {
		fake.addProductReturnsOnCall = make(map[int]struct {
			result1 error
		})
	}
	fake.addProductReturnsOnCall[i] = struct {
		result1 error
	}{result1}
}

var _ auctiontypes.AuctionHouse = new(FakeAuctionHouse)
