package models

import (
	"strings"
	"time"
)

// Backup record kinds.
const (
	BackupKindActivity    = "activity"
	BackupKindTransaction = "transaction"
	BackupKindTask        = "task"
	BackupKindThirdParty  = "thirdparty"
)

// BackupRecord is one exported entity inside a backup envelope. Exactly one
// of the entity pointers is set, matching Kind.
type BackupRecord struct {
	Kind        string       `json:"kind"`
	Activity    *Activity    `json:"activity,omitempty"`
	Transaction *Transaction `json:"transaction,omitempty"`
	Task        *Task        `json:"task,omitempty"`
	ThirdParty  *ThirdParty  `json:"third_party,omitempty"`
}

// BackupEnvelope is the emergency export written before local storage is
// wiped. The local file is the durable copy of record; the remote POST of
// the same envelope is best-effort only.
type BackupEnvelope struct {
	Timestamp string         `json:"timestamp"`
	Requests  []BackupRecord `json:"requests"`
}

// NewBackupEnvelope collects every record of the root, plus the third-party
// rows still awaiting acknowledgment, into an envelope stamped with ts.
// Already-synced third parties are server-owned and re-downloadable, so only
// tagged rows are worth preserving.
func NewBackupEnvelope(root SyncRoot, thirdParties []ThirdParty, ts time.Time) BackupEnvelope {
	env := BackupEnvelope{Timestamp: ts.UTC().Format(time.RFC3339)}

	for i := range root.Activities {
		a := root.Activities[i]
		env.Requests = append(env.Requests, BackupRecord{Kind: BackupKindActivity, Activity: &a})
	}
	for i := range root.Transactions {
		tx := root.Transactions[i]
		env.Requests = append(env.Requests, BackupRecord{Kind: BackupKindTransaction, Transaction: &tx})
	}
	for i := range root.Tasks {
		task := root.Tasks[i]
		env.Requests = append(env.Requests, BackupRecord{Kind: BackupKindTask, Task: &task})
	}
	for i := range thirdParties {
		tp := thirdParties[i]
		if !tp.Tag.Pending() {
			continue
		}
		env.Requests = append(env.Requests, BackupRecord{Kind: BackupKindThirdParty, ThirdParty: &tp})
	}

	return env
}

// BackupFileName builds the backup file name for the given application name
// and timestamp: "<app>-backup-<ISO8601>.json" with ':' and '.' replaced by
// '-' so the name is valid on every filesystem.
func BackupFileName(app string, ts time.Time) string {
	stamp := ts.UTC().Format(time.RFC3339)
	stamp = strings.NewReplacer(":", "-", ".", "-").Replace(stamp)
	return app + "-backup-" + stamp + ".json"
}
