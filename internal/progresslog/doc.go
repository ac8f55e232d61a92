// Copyright (c) 2020 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package progresslog provides periodic logging of avalanche peer manager
progress.

Tests are included to ensure proper functionality.

## Feature Overview

- Tracks the delta in valid peers and bound nodes between each logging
  interval
- Logs the peer manager's pool occupancy (conflicting, orphan, pending)
  every 10 seconds
- Callers may force an immediate log regardless of the last log time
*/
package progresslog
