package root

import (
	"github.com/saransh1220/artistly/cmd/artistctl/cmd/migrate"
	"github.com/saransh1220/artistly/cmd/artistctl/cmd/seed"
	"github.com/saransh1220/artistly/cmd/artistctl/cmd/store"
)

func init() {
	Root().AddCommand(store.DumpCommand())
	Root().AddCommand(store.ResetCommand())
	Root().AddCommand(seed.Command())
	Root().AddCommand(migrate.Command())
}
