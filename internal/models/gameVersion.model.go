package models

import (
	"fmt"
	"strconv"
	"strings"
)

type GameVersion int

const (
	Unknown             GameVersion = -1
	LittleBigPlanet1    GameVersion = 0
	LittleBigPlanet2    GameVersion = 1
	LittleBigPlanet3    GameVersion = 2
	LittleBigPlanetVita GameVersion = 3
	LittleBigPlanetPSP  GameVersion = 4
)

var gameVersionNames = map[GameVersion]string{
	Unknown:             "unknown",
	LittleBigPlanet1:    "lbp1",
	LittleBigPlanet2:    "lbp2",
	LittleBigPlanet3:    "lbp3",
	LittleBigPlanetVita: "lbpvita",
	LittleBigPlanetPSP:  "lbppsp",
}

func (v GameVersion) String() string {
	if name, ok := gameVersionNames[v]; ok {
		return name
	}
	return gameVersionNames[Unknown]
}

func (v GameVersion) IsValid() bool {
	_, ok := gameVersionNames[v]
	return ok && v != Unknown
}

// ParseGameVersion accepts either the short name ("lbp2") or the numeric wire value ("1").
func ParseGameVersion(value string) (GameVersion, error) {
	value = strings.ToLower(strings.TrimSpace(value))

	if n, err := strconv.Atoi(value); err == nil {
		version := GameVersion(n)
		if !version.IsValid() {
			return Unknown, fmt.Errorf("unknown game version %d", n)
		}
		return version, nil
	}

	for version, name := range gameVersionNames {
		if name == value && version != Unknown {
			return version, nil
		}
	}

	return Unknown, fmt.Errorf("unknown game version %q", value)
}
