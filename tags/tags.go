package tags

import "github.com/yohamta/donburi"

var (
	Page     = donburi.NewTag().SetName("Page")
	Cursor   = donburi.NewTag().SetName("Cursor")
	Confetti = donburi.NewTag().SetName("Confetti")
	Search   = donburi.NewTag().SetName("Search")
	Modal    = donburi.NewTag().SetName("Modal")
)
