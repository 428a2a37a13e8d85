package auction_http_client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"code.cloudfoundry.org/auctionhouse/auctiontypes"
	"code.cloudfoundry.org/auctionhouse/communication/http/routes"
	"code.cloudfoundry.org/lager/v3"
	"github.com/tedsuo/rata"
)

// AuctionHTTPClient talks to a remote auction house. Listing calls have no
// error return in AuctionHouse, so on failure they log and return nothing.
type AuctionHTTPClient struct {
	client           *http.Client
	address          string
	requestGenerator *rata.RequestGenerator
	logger           lager.Logger
}

func New(client *http.Client, address string, logger lager.Logger) *AuctionHTTPClient {
	return &AuctionHTTPClient{
		client:           client,
		address:          address,
		requestGenerator: rata.NewRequestGenerator(address, routes.Routes),
		logger:           logger.Session("auction-http-client", lager.Data{"address": address}),
	}
}

var _ auctiontypes.AuctionHouse = (*AuctionHTTPClient)(nil)

func (c *AuctionHTTPClient) CreateAuction(productID int, requiredParticipants int, maxRounds int) (string, error) {
	return c.createAuction(auctiontypes.CreateAuctionRequest{
		ProductID:            productID,
		RequiredParticipants: requiredParticipants,
		MaxRounds:            maxRounds,
	})
}

func (c *AuctionHTTPClient) OpenAuction(participantID int, maxBid int, isActive bool, productID int, requiredParticipants int, maxRounds int) (string, error) {
	return c.createAuction(auctiontypes.CreateAuctionRequest{
		ProductID:            productID,
		RequiredParticipants: requiredParticipants,
		MaxRounds:            maxRounds,
		Creator: &auctiontypes.CreatorRequest{
			ParticipantID: participantID,
			MaxBid:        maxBid,
			Active:        isActive,
		},
	})
}

func (c *AuctionHTTPClient) createAuction(request auctiontypes.CreateAuctionRequest) (string, error) {
	logger := c.logger.Session("create-auction", lager.Data{"product-id": request.ProductID})

	var response auctiontypes.CreateAuctionResponse
	err := c.do(logger, routes.CreateAuction, nil, request, http.StatusCreated, &response)
	if err != nil {
		return "", err
	}
	return response.Guid, nil
}

func (c *AuctionHTTPClient) Subscribe(auctionGuid string, participantID int, maxBid int, isActive bool) error {
	logger := c.logger.Session("subscribe", lager.Data{"auction-guid": auctionGuid, "participant": participantID})

	return c.do(logger, routes.Subscribe, rata.Params{"guid": auctionGuid}, auctiontypes.SubscribeRequest{
		ParticipantID: participantID,
		MaxBid:        maxBid,
		Active:        isActive,
	}, http.StatusCreated, nil)
}

func (c *AuctionHTTPClient) TriggerStart(auctionGuid string) error {
	logger := c.logger.Session("trigger-start", lager.Data{"auction-guid": auctionGuid})
	return c.do(logger, routes.TriggerStart, rata.Params{"guid": auctionGuid}, nil, http.StatusAccepted, nil)
}

func (c *AuctionHTTPClient) SubmitBid(auctionGuid string, amount int) error {
	logger := c.logger.Session("submit-bid", lager.Data{"auction-guid": auctionGuid, "amount": amount})
	return c.do(logger, routes.SubmitBid, rata.Params{"guid": auctionGuid}, auctiontypes.BidRequest{Amount: amount}, http.StatusAccepted, nil)
}

func (c *AuctionHTTPClient) AuctionState(auctionGuid string) (auctiontypes.AuctionState, error) {
	logger := c.logger.Session("fetching-auction-state", lager.Data{"auction-guid": auctionGuid})

	var state auctiontypes.AuctionState
	err := c.do(logger, routes.AuctionState, rata.Params{"guid": auctionGuid}, nil, http.StatusOK, &state)
	if err != nil {
		return auctiontypes.AuctionState{}, err
	}
	return state, nil
}

func (c *AuctionHTTPClient) Auctions() []auctiontypes.AuctionState {
	states := []auctiontypes.AuctionState{}
	c.do(c.logger.Session("fetching-auctions"), routes.Auctions, nil, nil, http.StatusOK, &states)
	return states
}

func (c *AuctionHTTPClient) Participants() []auctiontypes.ParticipantInfo {
	participants := []auctiontypes.ParticipantInfo{}
	c.do(c.logger.Session("fetching-participants"), routes.Participants, nil, nil, http.StatusOK, &participants)
	return participants
}

func (c *AuctionHTTPClient) Brokers() []auctiontypes.BrokerInfo {
	brokers := []auctiontypes.BrokerInfo{}
	c.do(c.logger.Session("fetching-brokers"), routes.Brokers, nil, nil, http.StatusOK, &brokers)
	return brokers
}

func (c *AuctionHTTPClient) Products() []auctiontypes.ProductInfo {
	products := []auctiontypes.ProductInfo{}
	c.do(c.logger.Session("fetching-products"), routes.Products, nil, nil, http.StatusOK, &products)
	return products
}

func (c *AuctionHTTPClient) AddProduct(product auctiontypes.ProductInfo) error {
	logger := c.logger.Session("add-product", lager.Data{"product-id": product.ID})
	return c.do(logger, routes.AddProduct, nil, product, http.StatusCreated, nil)
}

func (c *AuctionHTTPClient) do(logger lager.Logger, route string, params rata.Params, request interface{}, expectedStatus int, response interface{}) error {
	logger.Debug("requesting")

	var body *bytes.Reader
	if request != nil {
		payload, err := json.Marshal(request)
		if err != nil {
			logger.Error("failed-to-marshal-request", err)
			return err
		}
		body = bytes.NewReader(payload)
	} else {
		body = bytes.NewReader(nil)
	}

	req, err := c.requestGenerator.CreateRequest(route, params, body)
	if err != nil {
		logger.Error("failed-to-create-request", err)
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		logger.Error("failed-to-perform-request", err)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != expectedStatus {
		err := decodeError(resp)
		logger.Error("invalid-status-code", err, lager.Data{"status": resp.StatusCode})
		return err
	}

	if response != nil {
		err = json.NewDecoder(resp.Body).Decode(response)
		if err != nil {
			logger.Error("failed-to-decode-response", err)
			return err
		}
	}

	logger.Debug("done")
	return nil
}

func decodeError(resp *http.Response) error {
	var errorResponse auctiontypes.ErrorResponse
	err := json.NewDecoder(resp.Body).Decode(&errorResponse)
	if err == nil {
		if known, ok := auctiontypes.ErrorFromType(errorResponse.Type); ok {
			return known
		}
		if errorResponse.Message != "" {
			return fmt.Errorf("unexpected status code %d: %s", resp.StatusCode, errorResponse.Message)
		}
	}
	return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
}
