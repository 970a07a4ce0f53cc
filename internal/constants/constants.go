package constants

// Centralized constants for headers, routes, messages and log fields.
const (
	HeaderContentType = "Content-Type"
	ContentTypeJSON   = "application/json"
)

// Routes used by the backend router
const (
	RouteAPIPrefix     = "/api"
	RouteVersion       = "/version"
	RouteAbilities     = "/abilities"
	RouteStages        = "/stages"
	RouteSimulate      = "/simulate"
	RouteSimulateBatch = "/simulate/batch"
	RouteHeroes        = "/heroes"
	RouteHeroByID      = "/heroes/:heroID"
	RouteHeroBattles   = "/heroes/:heroID/battles"
	RouteHeroBattle    = "/heroes/:heroID/battles/:battleID"
	RouteBattleReplay  = "/heroes/:heroID/battles/:battleID/replay"
	RouteHealth        = "/healthz"
)

// Route parameters and query keys
const (
	ParamHeroID   = "heroID"
	ParamBattleID = "battleID"
	QuerySpeed    = "speed"
	QueryLimit    = "limit"
)

// Common JSON response keys
const (
	JSONKeyError   = "error"
	JSONKeyDetails = "details"
	JSONKeyStatus  = "status"
)

// Common error messages used across API handlers
const (
	ErrInvalidRequest       = "Invalid request"
	ErrInvalidDefinition    = "Invalid combatant definition"
	ErrInvalidSeed          = "seed must be a string or an integer"
	ErrInvalidHeroName      = "Hero name must be 1 to 32 characters"
	ErrHeroNotFound         = "Hero not found"
	ErrStageNotFound        = "Stage not found"
	ErrBattleNotFound       = "Battle not found"
	ErrInvalidBattleID      = "Invalid battle ID"
	ErrInvalidSpeed         = "speed must be 1, 2 or 4"
	ErrInvalidLimit         = "limit must be a positive integer"
	ErrBatchSizeRange       = "count must be between 1 and %d"
	ErrMaxRoundsRange       = "max_rounds must be between 1 and %d"
	ErrFailedCreateHero     = "Failed to create hero"
	ErrFailedFetchHero      = "Failed to fetch hero"
	ErrFailedRunStage       = "Failed to run stage"
	ErrFailedFetchBattles   = "Failed to fetch battles"
	ErrFailedSimulate       = "Failed to simulate battle"
	ErrFailedUpgradeReplay  = "Failed to open replay stream"
	ErrFailedScheduleReplay = "Failed to schedule replay"
)

// Logging field names
const (
	LogFieldHeroID   = "hero_id"
	LogFieldStageID  = "stage_id"
	LogFieldBattleID = "battle_id"
	LogFieldSeed     = "seed"
	LogFieldWinner   = "winner"
	LogFieldReason   = "reason"
	LogFieldRounds   = "rounds"
	LogFieldCount    = "count"
	LogFieldSpeed    = "speed"
	LogFieldAddr     = "addr"
	LogFieldSource   = "source"
)
