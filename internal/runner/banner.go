package runner

import "github.com/projectdiscovery/gologger"

var banner = (`
              _ _          _           _
  ___ _ __ ___ (_) | __| | ___  __| |_   _ _ __
 / _ \ '_ ` + "`" + ` _ \| | |/ _` + "`" + ` |/ _ \/ _` + "`" + ` | | | | '_ \
|  __/ | | | | | | (_| |  __/ (_| | |_| | |_) |
 \___|_| |_| |_|_|\__,_|\___|\__,_|\__,_| .__/
                                        |_|
`)

var version = "v0.1.0"

// showBanner is used to show the banner to the user
func showBanner() {
	gologger.Print().Msgf("%s\n", banner)
	gologger.Print().Msgf("\t\temail-identity dedup %s\n\n", version)
}
