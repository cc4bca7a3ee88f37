// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Deed Ledger Authors.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	cache "github.com/patrickmn/go-cache"

	"github.com/deedledger/registryd/address"
	"github.com/deedledger/registryd/fault"
	"github.com/deedledger/registryd/tokenid"
)

// MetadataProvider - resolves a token to its descriptive document URI
//
// the ledger itself stores no metadata; providers are pluggable so a
// deployment can serve URIs from a template, a database or an
// external gateway
type MetadataProvider interface {
	TokenURI(tokenId tokenid.TokenID) (string, error)
}

// TokenURI - the descriptive document URI of a token
//
// empty without error when no provider is configured; successful
// lookups are cached for a short period
func (r *Registry) TokenURI(tokenId tokenid.TokenID) (string, error) {
	if !r.Exists(tokenId) {
		return "", fault.TokenDoesNotExist
	}

	provider := r.currentProvider()
	if nil == provider {
		return "", nil
	}

	key := tokenId.String()
	if uri, found := r.uriCache.Get(key); found {
		return uri.(string), nil
	}

	uri, err := provider.TokenURI(tokenId)
	if nil != err {
		return "", err
	}

	r.uriCache.Set(key, uri, cache.DefaultExpiration)
	return uri, nil
}

// UseMetadataProvider - install the provider during startup
//
// configuration time only; unlike SetMetadataProvider this records no
// event, a restart is not a provider change
func (r *Registry) UseMetadataProvider(provider MetadataProvider) {
	r.providerLock.Lock()
	r.provider = provider
	r.providerLock.Unlock()
}

// SetMetadataProvider - install or remove the metadata provider
//
// restricted to the configured administrator; the URI cache is
// flushed so stale documents from the previous provider cannot leak
func (r *Registry) SetMetadataProvider(caller address.Address, provider MetadataProvider, description string) error {
	if caller != r.administrator {
		return fault.NotRegistryAdministrator
	}

	trx, err := r.beginUpdate()
	if nil != err {
		return err
	}
	defer r.endUpdate()

	event := r.appendEvent(trx, ProviderChangeEvent{
		Administrator: caller,
		Provider:      description,
	})

	if err := trx.Commit(); nil != err {
		trx.Abort()
		return err
	}

	r.providerLock.Lock()
	r.provider = provider
	r.providerLock.Unlock()
	r.uriCache.Flush()

	r.log.Infof("metadata provider changed: %s", description)
	r.publish([]interface{}{event})
	return nil
}

func (r *Registry) currentProvider() MetadataProvider {
	r.providerLock.RLock()
	defer r.providerLock.RUnlock()
	return r.provider
}
