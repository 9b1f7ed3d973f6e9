package migrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {

		if db.Dialect().Name().String() != "pg" {
			fmt.Printf("\033[1;31m%s\033[0m", "You are not using PostgreSQL. DB level checks can not be enabled!\n")
			return nil
		}
		sql := `
			-- mobile is the OTP delivery address, two accounts must not share one
				CREATE UNIQUE INDEX IF NOT EXISTS users_mobile_unique
				ON users (mobile) WHERE mobile IS NOT NULL;

			-- only one pending code per mobile, lookups happen by mobile
				CREATE UNIQUE INDEX IF NOT EXISTS otps_mobile_unique
				ON otps (mobile);

			-- the cash book is served newest first
				CREATE INDEX IF NOT EXISTS ledger_entries_created_at_idx
				ON ledger_entries (created_at DESC);
		`
		if _, err := db.Exec(sql); err != nil {
			return err
		}
		return nil
	}, nil)
}
