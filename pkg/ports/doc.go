/*
Package ports defines the driven ports (interfaces) for the storybook module.

These interfaces decouple the core logic from external implementations,
allowing sessions to persist against various storage backends and the export
pipeline to rasterize pages through pluggable surfaces.

# Key Interfaces

  - StateStore: Responsible for persisting and loading SessionState.
  - Rasterizer: Responsible for turning a PageView into a fixed-resolution bitmap.
  - PhotoSource: Responsible for handing the core an opaque byte source for the photo.
*/
package ports
