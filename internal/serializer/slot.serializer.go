package serializer

import (
	"lighthouse/internal/models"
	"strconv"
	"strings"
)

// SlotContext is everything a slot document needs beyond the record itself.
// Nil pointers are left out of the document.
type SlotContext struct {
	Creator    *models.User
	Location   *models.Location
	Statistics models.SlotStatistics
	YourRating *models.RatedLevel
	YourVisit  *models.VisitedLevel
}

func SerializeSlot(slot *models.Slot, ctx SlotContext) string {
	var b strings.Builder
	write := func(key string, value any) {
		b.WriteString(StringElement(key, value))
	}

	write("name", slot.Name)
	write("id", slot.SlotID)
	write("game", int(slot.GameVersion))
	if ctx.Creator != nil {
		write("npHandle", ctx.Creator.Username)
	}
	write("description", slot.Description)
	write("icon", slot.IconHash)
	write("rootLevel", slot.RootLevel)
	for _, resource := range slot.Resources {
		write("resource", resource)
	}
	if ctx.Location != nil {
		b.WriteString(RawElement("location", ctx.Location.Serialize()))
	}
	write("initiallyLocked", slot.InitiallyLocked)
	write("isSubLevel", slot.SubLevel)
	write("isLBP1Only", slot.Lbp1Only)
	write("shareable", slot.Shareable)
	write("background", slot.BackgroundHash)
	write("minPlayers", slot.MinimumPlayers)
	write("maxPlayers", slot.MaximumPlayers)
	write("moveRequired", slot.MoveRequired)
	write("firstPublished", slot.FirstUploaded)
	write("lastUpdated", slot.LastUpdated)
	write("mmpick", slot.TeamPick)
	write("heartCount", ctx.Statistics.HeartCount)
	write("playCount", slot.Plays())
	write("uniquePlayCount", slot.PlaysUnique())
	write("completionCount", slot.PlaysComplete())
	write("lbp1PlayCount", slot.PlaysLBP1)
	write("lbp1CompletionCount", slot.PlaysLBP1Complete)
	write("lbp1UniquePlayCount", slot.PlaysLBP1Unique)
	write("lbp2PlayCount", slot.PlaysLBP2)
	write("lbp2CompletionCount", slot.PlaysLBP2Complete)
	write("lbp2UniquePlayCount", slot.PlaysLBP2Unique)
	write("lbp3PlayCount", slot.PlaysLBP3)
	write("lbp3CompletionCount", slot.PlaysLBP3Complete)
	write("lbp3UniquePlayCount", slot.PlaysLBP3Unique)
	write("thumbsup", ctx.Statistics.ThumbsUp)
	write("thumbsdown", ctx.Statistics.ThumbsDown)
	write("averageRating", ctx.Statistics.AverageRating)
	write("leveltype", slot.LevelType)

	if ctx.YourRating != nil {
		write("yourRating", ctx.YourRating.RatingLBP1)
		write("yourDPadRating", ctx.YourRating.Rating)
	}
	if ctx.YourVisit != nil {
		write("yourLBP1PlayCount", ctx.YourVisit.PlaysLBP1)
		write("yourLBP2PlayCount", ctx.YourVisit.PlaysLBP2)
		write("yourLBP3PlayCount", ctx.YourVisit.PlaysLBP3)
	}

	return TaggedStringElement("slot", b.String(), Attr{Key: "type", Value: "user"})
}

// SerializeSlots wraps already rendered slot documents in a page envelope.
// hintStart tells the client where the next page begins.
func SerializeSlots(documents []string, total int, hintStart int) string {
	return TaggedStringElement(
		"slots",
		strings.Join(documents, ""),
		Attr{Key: "total", Value: strconv.Itoa(total)},
		Attr{Key: "hint_start", Value: strconv.Itoa(hintStart)},
	)
}
