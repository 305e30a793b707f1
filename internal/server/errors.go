package server

import "errors"

// errNoServersAreCreated is returned by NewServer when there is no HTTP
// handler to serve or no address to listen on.
var errNoServersAreCreated = errors.New("no servers are created")
