package sda

import "github.com/archivekit/sda/sda/value"

// These re-export the value package's carrier types under the sda.*
// names callers use; value.go itself is a leaf package shared with
// sda/insert and sda/extract so none of them import this façade package.

type Numeric = value.Numeric

type Complex = value.Complex

type Array[T Numeric | Complex] = value.Array[T]

type Sparse = value.Sparse

type SparseComplex = value.SparseComplex

type CharArray = value.CharArray

type File = value.File

type Cell = value.Cell

type ObjectArray = value.ObjectArray

type Object = value.Object

type Objects = value.Objects
