package services

import "errors"

// Общие ошибки, используемые в разных сервисах и маппинге HTTP.
var (
	// Ресурс не найден (универсальная)
	ErrNotFound = errors.New("requested resource not found")

	// Ошибки валидации и бизнес-правил
	ErrValidationFailed     = errors.New("validation failed")
	ErrAthleteNameRequired  = errors.New("athlete name is required")
	ErrAthleteNameInvalid   = errors.New("athlete name must not contain '/'")
	ErrTeamAthletesRequired = errors.New("both athletes are required")
	ErrTeamSameAthlete      = errors.New("a team needs two different athletes")
	ErrReservedLabel        = errors.New("label is reserved for a knockout stage")
	ErrRoundRequired        = errors.New("round label is required")
	ErrMatchSameTeam        = errors.New("a match needs two different teams")
	ErrVoteNotAllowed       = errors.New("voter and votee must be different athletes of the match")

	// Ошибки конфликтов
	ErrAthleteNameConflict = errors.New("athlete name is already registered")
	ErrAthleteInTeam       = errors.New("athlete belongs to a team")
	ErrTeamConflict        = errors.New("this pair is already registered")
	ErrTeamHasMatches      = errors.New("team already has matches")
	ErrMatchConflict       = errors.New("these teams already meet in this round")
	ErrAlreadyVoted        = errors.New("voter already voted in this round")
	ErrConcurrentUpdate    = errors.New("document kept changing, giving up")

	// Ошибки, специфичные для сущностей
	ErrAthleteNotFound = errors.New("athlete not found")
	ErrTeamNotFound    = errors.New("team not found")
	ErrMatchNotFound   = errors.New("match not found")
)
