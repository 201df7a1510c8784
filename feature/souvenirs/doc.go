// Package souvenirs implements the gift shop inventory.
package souvenirs
