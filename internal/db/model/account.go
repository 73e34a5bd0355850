package model

const AccountCollection = "accounts"

// AccountDocument registers a smart-contract-wallet owner that authorizes
// calls with a k-of-n threshold scheme. Owners without a registered account
// are treated as single-signer accounts whose id is their public key.
type AccountDocument struct {
	Owner      string   `bson:"_id"`
	Threshold  int      `bson:"threshold"`
	PubKeysHex []string `bson:"pub_keys_hex"`
}
