/*
Package domain contains the core domain models for the storybook configurator.

It defines the fundamental entities shared across the module, such as story
templates, page views, the user form, and order options. This package is kept
pure and free of external dependencies like I/O or persistence, following
Hexagonal Architecture principles.

# Key Entities

  - StoryTemplate / PageTemplate: The parameterized story definitions shared across users.
  - UserForm / OrderOptions: The mutable per-session input owned by the active session.
  - SessionState: The persisted snapshot of a configuration session.
  - PageView: One fully rendered page (cover or inner) ready for display or rasterization.
*/
package domain
