package bind

var defaultBindings = map[string]string{
	"`":          "toggleconsole",
	"~":          "toggleconsole",
	"1":          "impulse 1",
	"2":          "impulse 2",
	"3":          "impulse 3",
	"4":          "impulse 4",
	"5":          "impulse 5",
	"6":          "impulse 6",
	"7":          "impulse 7",
	"w":          "+forward",
	"s":          "+back",
	"a":          "+moveleft",
	"d":          "+moveright",
	"uparrow":    "+forward",
	"downarrow":  "+back",
	"leftarrow":  "+left",
	"rightarrow": "+right",
	"space":      "+use",
	"ctrl":       "+attack",
	"mouse1":     "+attack",
	"mouse2":     "+use",
	"shift":      "+speed",
	"alt":        "+strafe",
	"tab":        "togglemap",
	"t":          "messagemode",
	"y":          "messagemode2",
	"pause":      "pause",
	"escape":     "menu_main",
	"f1":         "menu_help",
	"f2":         "menu_save",
	"f3":         "menu_load",
	"f4":         "menu_options",
	"f5":         "menu_display",
	"f11":        "bumpgamma",
	"f12":        "spynext",
	"sysrq":      "screenshot",
}

var defaultAutomapBindings = map[string]string{
	"f":          "am_togglefollow",
	"g":          "am_togglegrid",
	"m":          "am_setmark",
	"c":          "am_clearmarks",
	"=":          "+am_zoomin",
	"-":          "+am_zoomout",
	"0":          "am_big",
	"uparrow":    "+am_panup",
	"downarrow":  "+am_pandown",
	"leftarrow":  "+am_panleft",
	"rightarrow": "+am_panright",
}
