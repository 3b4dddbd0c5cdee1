package util

import (
	"crypto/rand"
	"encoding/base64"
	"github.com/voodooEntity/gits"
	"github.com/voodooEntity/gits/src/query"
)

func IsAlive(gitsInstance *gits.Gits) bool {
	qry := query.New().Read("System").Match(
		"Value",
		"==",
		"PMLL",
	).Match(
		"Properties.State",
		"==",
		"Alive",
	)
	ret := gitsInstance.Query().Execute(qry)
	if 0 < ret.Amount {
		return true
	}
	return false
}

func Terminate(gitsInstance *gits.Gits) bool {
	qry := query.New().Update("System").Match(
		"Value",
		"==",
		"PMLL",
	).Set(
		"Properties.State",
		"Dead",
	)
	ret := gitsInstance.Query().Execute(qry)
	if 0 < ret.Amount {
		return true
	}
	return false
}

func StringInArray(haystack []string, needle string) bool {
	for _, val := range haystack {
		if needle == val {
			return true
		}
	}
	return false
}

func UniqueID() string {
	// Generate 16 random bytes
	bytes := make([]byte, 16)
	_, err := rand.Read(bytes)
	if err != nil {
		panic(err)
	}

	// Encode the random bytes to base64
	return base64.RawURLEncoding.EncodeToString(bytes)
}

func CopyStringStringMap(data map[string]string) map[string]string {
	ret := make(map[string]string)
	for k, v := range data {
		ret[k] = v
	}
	return ret
}
