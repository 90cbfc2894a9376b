// Package data holds the fixed escape-room catalogs. Items are defined at
// startup, validated once, and never mutated.
package data

import "github.com/Henry-L/hl-apps/models"

// Player1Items is player one's room. Gated items reference the puzzle that
// reveals them.
var Player1Items = []models.Item{
	{
		Kind:        models.KindPuzzle,
		ID:          "p1-safe",
		Title:       "🔐 Heavy Safe",
		Content:     "A locked safe with a 5-digit keypad.\n\nEngraved above the keypad:\n'The whole is greater than\nthe sum of its parts.'\n\nBelow it, strange symbols: ◆ ★ ◆ ● ★",
		HasInput:    true,
		Placeholder: "Enter 5 digits...",
		Answer:      "75732",
	},
	{
		Kind:    models.KindClue,
		ID:      "c1-wires",
		Title:   "📋 Faded Blueprint",
		Content: "ELECTRICAL SYSTEM v2.3\n\nCritical Note:\n'In case of emergency, sever connections\nin chromatic order - warm to cool,\nbut skip the one that cautions.\nEnd with nature's carpet.'",
	},
	{
		Kind:    models.KindHerring,
		ID:      "h1-photo",
		Title:   "📸 Polaroid Photo",
		Content: "A faded photo of 5 people.\n\nWritten on the back:\n'The twins are 7, Mom is 35,\nDad is 42, Grandma is 68.\nOur lucky number is the youngest.'",
	},
	{
		Kind:    models.KindHerring,
		ID:      "h1-recipe",
		Title:   "📝 Stained Recipe",
		Content: "AUNT MARTHA'S PIE\n\nPreheat to 375°F\nBake for 45 minutes\nServes 8\n\n'The secret ingredient\nis always love... and\n2 tablespoons of vanilla.'",
	},
	{
		Kind:       models.KindClue,
		ID:         "c1-grid",
		Title:      "🗺️ Encoded Map",
		Content:    "Found in the safe - a grid with cryptic instructions:\n\n'Begin where the alphabet ends.\nDescend by the count of seasons,\nand retreat by half of what\nmakes a dozen.'",
		UnlockedBy: "p1-safe",
	},
	{
		Kind:        models.KindPuzzle,
		ID:          "p1-clock",
		Title:       "🕰️ Ornate Clock",
		Content:     "The safe's opening triggered the clock to start ticking.\n\nA plaque beneath reads:\n'When the sun abandons the day,\nand winter's count guides the way.'",
		HasInput:    true,
		Placeholder: "Set time (H:MM)...",
		Answer:      "6:12",
		UnlockedBy:  "p1-safe",
	},
	{
		Kind:       models.KindHerring,
		ID:         "h1-ticket",
		Title:      "🎫 Theater Stub",
		Content:    "THE PHANTOM'S RETURN\n\nRow M, Seat 13\nMatinee: 2:30 PM\n\n'The show must go on,\neven when the lights fail\nat scene 4, act 2.'",
		UnlockedBy: "p1-safe",
	},
	{
		Kind:       models.KindClue,
		ID:         "c1-final",
		Title:      "🔔 Clockwork Secret",
		Content:    "The clock chimes and reveals a hidden note:\n\n'The spectrum's end holds the key.\nThree times the silent letter speaks.\nWhat you seek hides in reverse.'",
		UnlockedBy: "p1-clock",
	},
}

// Player2Items is player two's room.
var Player2Items = []models.Item{
	{
		Kind:    models.KindClue,
		ID:      "c2-symbols",
		Title:   "🔍 Cryptographer's Notes",
		Content: "Found tucked behind a painting:\n\nSYMBOL CIPHER (partial)\n◆ = 'Lucky number minus 1'\n★ = 'Fingers on one hand'\n● = 'Tricycle wheels'\n\nNote: 'Lucky 8, they say...'",
	},
	{
		Kind:        models.KindPuzzle,
		ID:          "p2-wires",
		Title:       "✂️ Tangled Wires",
		Content:     "A panel of colored wires:\n🔴 RED   🔵 BLUE   🟢 GREEN\n🟡 YELLOW   🟠 ORANGE\n\nA warning label:\n'Cut exactly THREE wires.\nOrder matters. Lives depend on it.'",
		HasInput:    true,
		Placeholder: "Three colors, comma separated...",
		Answer:      "RED,BLUE,GREEN",
	},
	{
		Kind:    models.KindHerring,
		ID:      "h2-calendar",
		Title:   "📅 Marked Calendar",
		Content: "MARCH 1987\n\nCircled: 3rd, 14th, 15th\n\nNote in margin:\n'Pi day comes before\nthe Ides. Remember\nwhat Caesar forgot.'",
	},
	{
		Kind:    models.KindHerring,
		ID:      "h2-newspaper",
		Title:   "📰 Old Headline",
		Content: "DAILY TRIBUNE - 1962\n\n'LOCAL CIPHER CLUB WINS\nNATIONAL COMPETITION'\n\n'The key to success,'\nsaid the winner, 'is knowing\nthat A=1, but Z≠26.'",
	},
	{
		Kind:       models.KindClue,
		ID:         "c2-journal",
		Title:      "📜 Hidden Diary",
		Content:    "The wire panel slides away revealing a diary:\n\n'June 21st - The longest day.\nThe hour when workers rest,\nmultiplied by the seasons,\nthen halved, shows the minutes.\nSunset marks the hour.'",
		UnlockedBy: "p2-wires",
	},
	{
		Kind:        models.KindPuzzle,
		ID:          "p2-grid",
		Title:       "📍 Coordinate Lock",
		Content:     "Behind the wires - a lock with a grid:\n\n    1  2  3  4  5\nA   ○  ○  ○  ○  ○\nB   ○  ○  ○  ○  ○\nC   ○  ○  ○  ○  ○\nD   ○  ○  ○  ○  ○\nE   ○  ○  ○  ○  ○\n\n'The answer lies in letters and numbers.'",
		HasInput:    true,
		Placeholder: "Enter coordinate (e.g. B3)...",
		Answer:      "A2",
		UnlockedBy:  "p2-wires",
	},
	{
		Kind:       models.KindHerring,
		ID:         "h2-postcard",
		Title:      "✉️ Foreign Postcard",
		Content:    "GRÜSSE AUS WIEN!\n\nRoom 714 at the Grand.\nMozart would approve.\n\n'K.545 holds the answer,\nbut only in the third movement.'\n\n- Your Secret Admirer",
		UnlockedBy: "p2-wires",
	},
	{
		Kind:       models.KindClue,
		ID:         "c2-final",
		Title:      "🗝️ Brass Key",
		Content:    "The grid lock releases a small brass key.\n\nEngraved on it:\n'For the one who listened,\nspoke, and solved together.\nTwo minds, one escape.'",
		UnlockedBy: "p2-grid",
	},
}

// CatalogForPlayer returns the item list for player 1 or 2, or nil for any
// other number.
func CatalogForPlayer(player int) []models.Item {
	switch player {
	case 1:
		return Player1Items
	case 2:
		return Player2Items
	default:
		return nil
	}
}
