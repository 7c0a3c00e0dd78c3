package factory

// RobotListInfo is one summary row of a Factory listing
type RobotListInfo struct {
	ItemID             int64   `json:"itemId"`
	ItemName           string  `json:"itemName"`
	ItemDescription    string  `json:"itemDescription"`
	Thumbnail          string  `json:"thumbnail"`
	AddedBy            string  `json:"addedBy"`
	AddedByDisplayName string  `json:"addedByDisplayName"`
	AddedDate          string  `json:"addedDate"`  // ISO date
	ExpiryDate         string  `json:"expiryDate"` // ISO date
	CPU                int64   `json:"cpu"`
	TotalRobotRanking  int64   `json:"totalRobotRanking"`
	RentCount          int64   `json:"rentCount"`
	BuyCount           int64   `json:"buyCount"`
	Buyable            bool    `json:"buyable"`
	RemovedDate        *string `json:"removedDate"`
	BanDate            *string `json:"banDate"`
	Featured           bool    `json:"featured"`
	BannerMessage      *string `json:"bannerMessage"`
	CombatRating       float32 `json:"combatRating"`
	CosmeticRating     float32 `json:"cosmeticRating"`
	CubeAmounts        string  `json:"cubeAmounts"` // JSON object as text
}

// RobotInfo is the detail document of one robot, geometry included
type RobotInfo struct {
	RobotListInfo
	CubeData   string `json:"cubeData"`   // base64
	ColourData string `json:"colourData"` // base64
}

// ListResponse is the payload of a listing call
type ListResponse struct {
	RoboShopItems []RobotListInfo `json:"roboShopItems"`
}

// envelope wraps every Factory answer
type envelope[T any] struct {
	Response   T   `json:"response"`
	StatusCode int `json:"statusCode"`
}

// OrderType selects listing order
type OrderType uint8

// Factory order types
const (
	OrderSuggested OrderType = iota
	OrderCombatRating
	OrderCosmeticRating
	OrderAdded
	OrderCPU
	OrderMostBought
)

// OrderTypeFromCode maps a wire code to an OrderType; ok is false when code is out of range
func OrderTypeFromCode(code int32) (OrderType, bool) {
	if code < int32(OrderSuggested) || code > int32(OrderMostBought) {
		return OrderSuggested, false
	}
	return OrderType(code), true
}

// TextSearchType selects which field a text filter matches
type TextSearchType uint8

// Factory text search fields
const (
	TextSearchAll TextSearchType = iota
	TextSearchPlayer
	TextSearchName
)

// TextSearchTypeFromCode maps a wire code to a TextSearchType; ok is false when code is out of range
func TextSearchTypeFromCode(code int32) (TextSearchType, bool) {
	if code < int32(TextSearchAll) || code > int32(TextSearchName) {
		return TextSearchAll, false
	}
	return TextSearchType(code), true
}

// Movement category codes used in movement filters
const (
	MovementWheels     = 100000
	MovementHovers     = 200000
	MovementAerofoils  = 300000
	MovementThrusters  = 400000
	MovementRudders    = 500000
	MovementInsectLegs = 600000
	MovementMechLegs   = 700000
	MovementSkis       = 800000
	MovementTankTreads = 900000
	MovementRotors     = 1000000
	MovementSprinters  = 1100000
	MovementPropellers = 1200000
)

// Weapon category codes used in weapon filters
const (
	WeaponLaser          = 10000000
	WeaponPlasmaLauncher = 20000000
	WeaponGyroMortar     = 25000000
	WeaponRailCannon     = 30000000
	WeaponNanoDisruptor  = 40000000
	WeaponTeslaBlade     = 50000000
	WeaponAeroflakCannon = 60000000
	WeaponIonCannon      = 65000000
	WeaponProtoSeeker    = 70100000
	WeaponChainShredder  = 75000000
)

// DefaultMovementFilter matches every movement category
const DefaultMovementFilter = "100000,200000,300000,400000,500000,600000,700000,800000,900000,1000000,1100000,1200000"

// DefaultWeaponFilter matches every weapon category
const DefaultWeaponFilter = "10000000,20000000,25000000,30000000,40000000,50000000,60000000,65000000,70100000,75000000"
