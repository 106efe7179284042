// Package ui contains the Bubble Tea program that hosts the frozen grid and
// the reorderable task list.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, which are routed
//     through a typed handler registry so each tea.Msg is handled by a focused
//     function (keys in input.go, mouse in mouse.go, resizes and focus loss in
//     model.go).
//   - Mouse wheel input lands on whichever grid pane is under the pointer and
//     goes through that pane's sync group. Presses on the divider or on a
//     column header start drags owned by the grid; presses on a task start a
//     drag owned by the task reorder controller.
//   - Layout changes never produce commands themselves. The only side effect
//     that leaves the update loop is reporting the final task order, which
//     runs through the command bus.
//
// State ownership:
//   - internal/grid owns the panes, splits and column order.
//   - internal/ui/state.List tracks the task cursor and its scroll region.
//   - internal/reorder.Controller owns the task order.
package ui
