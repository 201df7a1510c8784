// Package loader registers the HTTP features of the service.
//
// A Feature owns one route group. cmd/start.go builds every feature with its
// dependencies, registers it on a Manager and calls LoadAll once the global
// middleware is in place. Features reporting IsEnabled() == false are skipped;
// the snapshot feature uses this when object storage is off.
//
//	mgr := loader.NewManager(logg)
//	mgr.Register(animals.NewFeature(db, alloc, logg))
//	if err := mgr.LoadAll(app); err != nil {
//	    logg.Fatal("Failed to load features", zap.Error(err))
//	}
package loader
