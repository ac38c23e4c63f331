package filters

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"lighthouse/internal/models"
)

var (
	ErrUnknownFilter      = errors.New("unknown filter")
	ErrInvalidFilterValue = errors.New("invalid filter value")
)

// Names accepted by Parse, as they appear in listing query strings.
const (
	ParamTeamPick         = "teamPick"
	ParamGameVersion      = "gameVersion"
	ParamCreator          = "creator"
	ParamExcludeSubLevels = "excludeSubLevels"
	ParamExcludeLBP1Only  = "excludeLbp1Only"
	ParamExcludeMove      = "excludeMove"
	ParamPlayers          = "players"
	ParamUploadedAfter    = "uploadedAfter"
	ParamUploadedBefore   = "uploadedBefore"
	ParamLevelType        = "levelType"
	ParamResource         = "resource"
)

// Parse builds the filter named by a request parameter. Boolean filters are
// enabled by "true" and produce no filter for "false".
func Parse(name, value string) (SlotFilter, error) {
	value = strings.TrimSpace(value)

	switch name {
	case ParamTeamPick:
		return boolFilter(name, value, TeamPickFilter{})
	case ParamExcludeSubLevels:
		return boolFilter(name, value, ExcludeSubLevelFilter{})
	case ParamExcludeLBP1Only:
		return boolFilter(name, value, ExcludeLBP1OnlyFilter{})
	case ParamExcludeMove:
		return boolFilter(name, value, ExcludeMoveFilter{})
	case ParamGameVersion:
		var versions []models.GameVersion
		for _, part := range strings.Split(value, ",") {
			version, err := models.ParseGameVersion(part)
			if err != nil {
				return nil, fmt.Errorf("%w: %s: %v", ErrInvalidFilterValue, name, err)
			}
			versions = append(versions, version)
		}
		return GameVersionFilter{Versions: versions}, nil
	case ParamCreator:
		id, err := positiveInt(name, value)
		if err != nil {
			return nil, err
		}
		return CreatorFilter{CreatorID: id}, nil
	case ParamPlayers:
		players, err := positiveInt(name, value)
		if err != nil {
			return nil, err
		}
		return PlayerCountFilter{Players: players}, nil
	case ParamUploadedAfter, ParamUploadedBefore:
		timestamp, err := strconv.ParseInt(value, 10, 64)
		if err != nil || timestamp <= 0 {
			return nil, fmt.Errorf("%w: %s=%q", ErrInvalidFilterValue, name, value)
		}
		if name == ParamUploadedAfter {
			return FirstUploadedFilter{After: timestamp}, nil
		}
		return FirstUploadedFilter{Before: timestamp}, nil
	case ParamLevelType:
		if value == "" {
			return nil, fmt.Errorf("%w: %s is empty", ErrInvalidFilterValue, name)
		}
		return LevelTypeFilter{LevelType: value}, nil
	case ParamResource:
		if value == "" || strings.Contains(value, models.ResourceDelimiter) {
			return nil, fmt.Errorf("%w: %s=%q", ErrInvalidFilterValue, name, value)
		}
		return ResourceFilter{Hash: value}, nil
	}

	return nil, fmt.Errorf("%w: %s", ErrUnknownFilter, name)
}

// ParseAll parses every parameter and composes the result. The first invalid
// parameter aborts the whole set.
func ParseAll(params map[string]string) (AndFilter, error) {
	var parsed []SlotFilter
	for name, value := range params {
		filter, err := Parse(name, value)
		if err != nil {
			return AndFilter{}, err
		}
		parsed = append(parsed, filter)
	}
	return And(parsed...), nil
}

func boolFilter(name, value string, filter SlotFilter) (SlotFilter, error) {
	if value == "" {
		return filter, nil
	}
	enabled, err := strconv.ParseBool(value)
	if err != nil {
		return nil, fmt.Errorf("%w: %s=%q", ErrInvalidFilterValue, name, value)
	}
	if !enabled {
		return nil, nil
	}
	return filter, nil
}

func positiveInt(name, value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%w: %s=%q", ErrInvalidFilterValue, name, value)
	}
	return n, nil
}
