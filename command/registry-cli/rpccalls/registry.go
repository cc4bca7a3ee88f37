// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Deed Ledger Authors.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/deedledger/registryd/rpc/registryapi"
)

// GetRegistryInfo - request status from registryd (must be matching version)
func (client *Client) GetRegistryInfo() (*registryapi.InfoReply, error) {
	var reply registryapi.InfoReply
	if err := client.client.Call("Registry.Info", registryapi.InfoArguments{}, &reply); nil != err {
		return nil, err
	}

	return &reply, nil
}

// GetRegistryInfoCompat - request status from registryd (any version)
func (client *Client) GetRegistryInfoCompat() (map[string]interface{}, error) {
	var reply map[string]interface{}
	if err := client.client.Call("Registry.Info", registryapi.InfoArguments{}, &reply); nil != err {
		return nil, err
	}

	return reply, nil
}

// GetCapability - check a capability selector
func (client *Client) GetCapability(selector string) (*registryapi.CapabilityReply, error) {

	capabilityArgs := registryapi.CapabilityArguments{
		Selector: selector,
	}

	client.printJson("Capability Request", capabilityArgs)

	reply := &registryapi.CapabilityReply{}
	err := client.client.Call("Registry.Capability", capabilityArgs, reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Capability Reply", reply)

	return reply, nil
}

// ListData - data for a global list request
type ListData struct {
	Start uint64
	Count int
}

// GetList - obtain a slice of the global token list
func (client *Client) GetList(listConfig *ListData) (*registryapi.ListReply, error) {

	listArgs := registryapi.ListArguments{
		Start: listConfig.Start,
		Count: listConfig.Count,
	}

	client.printJson("List Request", listArgs)

	reply := &registryapi.ListReply{}
	err := client.client.Call("Registry.List", listArgs, reply)
	if nil != err {
		return nil, err
	}

	client.printJson("List Reply", reply)

	return reply, nil
}

// EventsData - data for an event history request
type EventsData struct {
	Start uint64
	Count int
}

// GetEvents - obtain a slice of the recorded event history
func (client *Client) GetEvents(eventsConfig *EventsData) (*registryapi.EventsReply, error) {

	eventsArgs := registryapi.EventsArguments{
		Start: eventsConfig.Start,
		Count: eventsConfig.Count,
	}

	client.printJson("Events Request", eventsArgs)

	reply := &registryapi.EventsReply{}
	err := client.client.Call("Registry.Events", eventsArgs, reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Events Reply", reply)

	return reply, nil
}
