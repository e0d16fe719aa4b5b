package store

// Storage row keys. One row per collection; the transactional root
// (activities, transactions, tasks) is one composed row so a single write
// covers all three collections.
const (
	keyTransactionRoot = "Transactions"

	keyMaterials    = "Materials"
	keyPoints       = "Points"
	keyThirdParties = "ThirdParties"
	keyTreatments   = "Treatments"
	keyVehicles     = "Vehicles"
	keyPackaging    = "Packaging"

	keyAccessToken    = "AccessToken"
	keyRefreshToken   = "RefreshToken"
	keyUsername       = "Username"
	keyTokenExpiresAt = "TokenExpiresAt"
)

const (
	getRecord = `
		SELECT value
		FROM records
		WHERE key = $1;`

	upsertRecord = `
		INSERT INTO records (key, value)
		VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value;`

	deleteRecord = `
		DELETE FROM records
		WHERE key = $1;`

	deleteAllRecords = `
		DELETE FROM records;`
)
