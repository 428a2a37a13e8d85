package routes

import "github.com/tedsuo/rata"

const (
	CreateAuction = "CREATE_AUCTION"
	Auctions      = "AUCTIONS"
	AuctionState  = "AUCTION_STATE"
	Subscribe     = "SUBSCRIBE"
	TriggerStart  = "TRIGGER_START"
	SubmitBid     = "SUBMIT_BID"

	Participants = "PARTICIPANTS"
	Brokers      = "BROKERS"
	Products     = "PRODUCTS"
	AddProduct   = "ADD_PRODUCT"
)

var Routes = rata.Routes{
	{Path: "/v1/auctions", Method: "POST", Name: CreateAuction},
	{Path: "/v1/auctions", Method: "GET", Name: Auctions},
	{Path: "/v1/auctions/:guid", Method: "GET", Name: AuctionState},
	{Path: "/v1/auctions/:guid/participants", Method: "POST", Name: Subscribe},
	{Path: "/v1/auctions/:guid/start", Method: "POST", Name: TriggerStart},
	{Path: "/v1/auctions/:guid/bids", Method: "POST", Name: SubmitBid},

	{Path: "/v1/participants", Method: "GET", Name: Participants},
	{Path: "/v1/brokers", Method: "GET", Name: Brokers},
	{Path: "/v1/products", Method: "GET", Name: Products},
	{Path: "/v1/products", Method: "POST", Name: AddProduct},
}
