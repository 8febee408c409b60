// Package model defines the typed vocabulary shared by the registration form
// engine, its catalog loader, and the renderers. FieldID enumerates every
// control on the form; its String form is the control's element id, so hosts
// and catalog documents can keep addressing controls the way the markup does
// ("name", "cc-num", "activities-box"). Catalog carries the option data the
// form is built from: job roles, shirt designs and their colours (linked by a
// theme tag), activities with a cost and a time slot, payment methods, and the
// expiry selectors. Placeholder options occupy index 0 of a select and are
// never a valid choice.
package model
