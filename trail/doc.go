// Copyright (c) 2026, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package trail provides a food-trail grid world for an agent that can turn
left, turn right, or move forward one cell.  Moving onto a food cell eats
the food and earns a reward, and the episode is done once all the food has
been eaten.  Moves off the edge of the grid leave the agent in place.

Env follows the emergent env.Env conventions (Init, Step, State, Action,
Counter) and can also be driven directly with Act.
*/
package trail
