// Package ui contains the Bubble Tea program that draws the tab strip, the
// selected tab's content and the two popup menus.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, which are routed
//     through a typed handler registry (keys, mouse, resize, clipboard
//     results). Anything without a handler goes to the selected tab's content
//     when it implements Interactive.
//   - Key presses reach an open popup first, then the global bindings in
//     KeyMap, then the content.
//   - Mouse presses inside a popup pick an item. Presses outside close every
//     open popup and then hit-test the strip below.
//
// State ownership:
//   - Tabs, selection and the closed history live in tabs.Store. The model
//     never mutates them directly; every change goes through the command bus
//     in internal/ui/command so it is traced the same way regardless of
//     whether a key, a click or a menu item triggered it.
//   - Popup state (visibility, anchor, filter, cursor) lives in
//     internal/ui/state.Overlays and is never persisted.
//
// Geometry is recomputed from the store on every frame (layout.go), so hit
// testing and rendering always agree.
package ui
